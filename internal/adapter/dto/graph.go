package dto

// Connection is one node of the collaboration graph: a person, the
// organization derived from their email domain, and the topics they have
// been exposed to across meetings.
type Connection struct {
	Person           string   `json:"person"`
	Organization     string   `json:"organization"`
	Topics           []string `json:"topics"`
	InteractionCount int      `json:"interaction_count"`
}

// GraphResponse is the body returned by GET /api/graph/connections
type GraphResponse struct {
	Connections []Connection `json:"connections"`
}
