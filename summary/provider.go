package summary

import "fmt"

// NewClient builds the LLM client for a provider.
func NewClient(service ServiceType, apiKey string) (Client, error) {
	switch service {
	case AnthropicServiceType:
		return NewAnthropicClient(apiKey), nil
	case OpenAiServiceType:
		return NewOpenAiClient(apiKey), nil
	}
	return nil, fmt.Errorf("unknown provider %q", service)
}
