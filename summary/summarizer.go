package summary

import (
	"context"
	"fmt"
)

// Summarizer turns a transcript into a Markdown guide with a single model call.
type Summarizer struct {
	client Client
	model  string
	system string
}

func NewSummarizer(client Client, service ServiceType, level Level) *Summarizer {
	return &Summarizer{
		client: client,
		model:  Model(service, level),
		system: Instruction,
	}
}

func (s *Summarizer) Model() string {
	return s.model
}

// Summarize sends the transcript as-is, empty or not. The first segment of the
// reply must be text; anything else means the model broke its contract and is
// returned as ErrUnexpectedContent without a retry.
func (s *Summarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	resp, err := s.client.CreateMessage(ctx, Request{
		Model:      s.model,
		MaxTokens:  MaxTokens,
		System:     s.system,
		Transcript: wrapTranscript(transcript),
	})
	if err != nil {
		return "", err
	}

	if resp == nil || len(resp.Segments) == 0 {
		return "", ErrEmptyResponse
	}

	switch first := resp.Segments[0]; first.Kind {
	case TextSegment:
		return first.Text, nil
	default:
		return "", fmt.Errorf("%w: first segment is %q, want %q", ErrUnexpectedContent, first.Kind, TextSegment)
	}
}
