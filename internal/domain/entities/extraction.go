package entities

// Extraction is the structured output of the entity-extraction stage.
type Extraction struct {
	Topics      []string  `json:"topics"`
	ActionItems []string  `json:"action_items"`
	Decisions   []string  `json:"decisions"`
	Sentiment   Sentiment `json:"sentiment"`
}

// EmptyExtraction is the degrade-gracefully fallback used when the model
// returns output that cannot be decoded: no entities, neutral sentiment.
func EmptyExtraction() *Extraction {
	return &Extraction{
		Topics:      []string{},
		ActionItems: []string{},
		Decisions:   []string{},
		Sentiment:   SentimentNeutral,
	}
}
