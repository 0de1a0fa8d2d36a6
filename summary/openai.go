package summary

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAiClient struct {
	client *openai.Client
}

func NewOpenAiClient(apiKey string) *OpenAiClient {
	return &OpenAiClient{client: openai.NewClient(apiKey)}
}

func NewOpenAiClientWithConfig(cfg openai.ClientConfig) *OpenAiClient {
	return &OpenAiClient{client: openai.NewClientWithConfig(cfg)}
}

func (c *OpenAiClient) CreateMessage(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     req.Model,
		MaxTokens: int(OutputLimit(req.Model, req.MaxTokens)),
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Transcript,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai create chat completion: %w", err)
	}

	out := &Response{}
	for _, choice := range resp.Choices {
		if len(choice.Message.ToolCalls) > 0 && choice.Message.Content == "" {
			out.Segments = append(out.Segments, Segment{Kind: ToolUseSegment})
			continue
		}
		out.Segments = append(out.Segments, Segment{Kind: TextSegment, Text: choice.Message.Content})
	}
	return out, nil
}

func (c *OpenAiClient) String() string {
	return string(OpenAiServiceType)
}
