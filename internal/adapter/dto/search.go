package dto

// SearchResult pairs a transcript with its similarity to the query
type SearchResult struct {
	Transcript TranscriptResponse `json:"transcript"`
	Score      float64            `json:"score"`
}

// SearchResponse is the body returned by GET /api/search
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}
