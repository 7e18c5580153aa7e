package ingestion

import (
	"encoding/json"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Parser decodes the extraction model's raw output into an Extraction
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the raw assistant content. The second return value reports
// whether real model output was decoded; on any decode failure it is false
// and the returned extraction is the empty/neutral fallback.
func (p *Parser) Parse(content string) (*entities.Extraction, bool) {
	var payload struct {
		Topics      []string `json:"topics"`
		ActionItems []string `json:"action_items"`
		Decisions   []string `json:"decisions"`
		Sentiment   string   `json:"sentiment"`
	}
	if err := json.Unmarshal([]byte(extractJSON(content)), &payload); err != nil {
		return entities.EmptyExtraction(), false
	}

	extraction := &entities.Extraction{
		Topics:      payload.Topics,
		ActionItems: payload.ActionItems,
		Decisions:   payload.Decisions,
		Sentiment:   entities.NormalizeSentiment(payload.Sentiment),
	}
	if extraction.Topics == nil {
		extraction.Topics = []string{}
	}
	if extraction.ActionItems == nil {
		extraction.ActionItems = []string{}
	}
	if extraction.Decisions == nil {
		extraction.Decisions = []string{}
	}
	return extraction, true
}

// extractJSON strips the markdown code fences the model sometimes wraps its
// JSON payload in.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
