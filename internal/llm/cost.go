package llm

// ModelCost holds per-million-token pricing in USD.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the estimated USD cost for the given token counts.
func (m ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)/1e6*m.InputPerMTok + float64(outputTokens)/1e6*m.OutputPerMTok
}

// costTable maps model identifiers to published pricing. Entries are looked
// up exactly; an unknown model simply shows no cost estimate.
var costTable = map[string]ModelCost{
	"gemini-3-flash-preview": {InputPerMTok: 0.30, OutputPerMTok: 2.50},
	"gemini-3-pro-preview":   {InputPerMTok: 2.00, OutputPerMTok: 12.00},
	"gemini-2.5-flash":       {InputPerMTok: 0.30, OutputPerMTok: 2.50},
	"gpt-4o":                 {InputPerMTok: 2.50, OutputPerMTok: 10.00},
	"gpt-4o-mini":            {InputPerMTok: 0.15, OutputPerMTok: 0.60},
	"claude-sonnet-4-5":      {InputPerMTok: 3.00, OutputPerMTok: 15.00},
}

// LookupCost returns pricing for a model, or nil when unknown.
func LookupCost(model string) *ModelCost {
	if c, ok := costTable[model]; ok {
		return &c
	}
	return nil
}
