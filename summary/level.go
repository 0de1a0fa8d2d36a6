package summary

import (
	"fmt"
	"strings"
)

// Level selects how capable (and expensive) the model behind a summary is.
type Level int

const (
	Low Level = iota
	High
)

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "":
		return Low, nil
	case "high":
		return High, nil
	}
	return Low, fmt.Errorf("unknown level %q (want high or low)", s)
}

func (l Level) String() string {
	if l == High {
		return "high"
	}
	return "low"
}

type ServiceType string

const (
	AnthropicServiceType ServiceType = "anthropic"
	OpenAiServiceType    ServiceType = "openai"
)

func ParseServiceType(s string) (ServiceType, error) {
	switch t := ServiceType(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return AnthropicServiceType, nil
	case AnthropicServiceType, OpenAiServiceType:
		return t, nil
	}
	return "", fmt.Errorf("unknown provider %q (want anthropic or openai)", s)
}

const (
	AnthropicSonnetModel = "claude-sonnet-4-20250514"
	AnthropicHaikuModel  = "claude-3-5-haiku-latest"
	OpenAiHighModel      = "gpt-4o"
	OpenAiLowModel       = "gpt-4o-mini"
)

var models = map[ServiceType][2]string{
	AnthropicServiceType: {Low: AnthropicHaikuModel, High: AnthropicSonnetModel},
	OpenAiServiceType:    {Low: OpenAiLowModel, High: OpenAiHighModel},
}

// Model returns the fixed model id for a provider and level. An unknown
// provider falls back to the Anthropic table.
func Model(service ServiceType, level Level) string {
	table, ok := models[service]
	if !ok {
		table = models[AnthropicServiceType]
	}
	if level == High {
		return table[High]
	}
	return table[Low]
}

// Output token limits per model; the APIs reject requests above them.
var outputLimits = map[string]int64{
	AnthropicSonnetModel: 64000,
	AnthropicHaikuModel:  8192,
	OpenAiHighModel:      16384,
	OpenAiLowModel:       16384,
}

// OutputLimit clamps requested to what model accepts. Models outside the
// table are passed through unchanged.
func OutputLimit(model string, requested int64) int64 {
	if limit, ok := outputLimits[model]; ok && requested > limit {
		return limit
	}
	return requested
}
