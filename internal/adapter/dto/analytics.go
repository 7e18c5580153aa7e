package dto

import "time"

// TopicFrequency is one row of the topic frequency report
type TopicFrequency struct {
	Topic string `json:"topic"`
	Count int64  `json:"count"`
}

// MeetingRef is a lightweight pointer to a transcript
type MeetingRef struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ParticipantEngagement summarizes one participant's meeting activity
type ParticipantEngagement struct {
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Role          *string      `json:"role,omitempty"`
	MeetingsCount int          `json:"meetings_count"`
	Meetings      []MeetingRef `json:"meetings"`
}

// SentimentTrendPoint is the average sentiment for one calendar day
type SentimentTrendPoint struct {
	Date              string  `json:"date"`
	AvgSentimentScore float64 `json:"avg_sentiment_score"`
}
