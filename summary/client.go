package summary

import (
	"context"
	"errors"
)

// MaxTokens caps the length of a generated guide.
const MaxTokens int64 = 64000

var (
	ErrUnexpectedContent = errors.New("unexpected content in model response")
	ErrEmptyResponse     = errors.New("received empty response from model")
)

type SegmentKind string

const (
	TextSegment    SegmentKind = "text"
	ToolUseSegment SegmentKind = "tool_use"
	ImageSegment   SegmentKind = "image"
)

type Segment struct {
	Kind SegmentKind
	Text string
}

type Response struct {
	Segments []Segment
}

// Request is built fresh for every call and never reused.
type Request struct {
	Model     string
	MaxTokens int64
	System    string
	// Transcript is already wrapped in <transcript> tags.
	Transcript string
}

// Client is the LLM collaborator. Implementations return transport and API
// failures as-is.
type Client interface {
	CreateMessage(ctx context.Context, req Request) (*Response, error)
	String() string
}
