package summary

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client *anthropic.Client
}

// NewAnthropicClient disables the SDK's automatic retries so that one
// summary is exactly one request.
func NewAnthropicClient(apiKey string, opts ...option.RequestOption) *AnthropicClient {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	return &AnthropicClient{client: anthropic.NewClient(opts...)}
}

func (c *AnthropicClient) CreateMessage(ctx context.Context, req Request) (*Response, error) {
	msg := anthropic.MessageNewParams{
		Model:     anthropic.F(anthropic.Model(req.Model)),
		MaxTokens: anthropic.Int(OutputLimit(req.Model, req.MaxTokens)),
		System: anthropic.F([]anthropic.TextBlockParam{
			anthropic.NewTextBlock(req.System),
		}),
		Messages: anthropic.F([]anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Transcript)),
		}),
	}

	resp, err := c.client.Messages.New(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("anthropic create message: %w", err)
	}

	out := &Response{Segments: make([]Segment, 0, len(resp.Content))}
	for _, block := range resp.Content {
		out.Segments = append(out.Segments, Segment{
			Kind: SegmentKind(block.Type),
			Text: block.Text,
		})
	}
	return out, nil
}

func (c *AnthropicClient) String() string {
	return string(AnthropicServiceType)
}
