package analytics

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// Engagement is one participant with the meetings they attended
type Engagement struct {
	Participant entities.Participant
	Meetings    []entities.Transcript
}

// TrendPoint is the average sentiment score for one calendar day (UTC)
type TrendPoint struct {
	Date    string
	Average float64
}

// Connection is one node of the collaboration graph
type Connection struct {
	Person           string
	Organization     string
	Topics           []string
	InteractionCount int
}

// Service computes rollups over the ingested corpus
type Service interface {
	TopicFrequencies(ctx context.Context) ([]repositories.TopicCount, error)
	ParticipantEngagement(ctx context.Context) ([]Engagement, error)
	SentimentTrend(ctx context.Context) ([]TrendPoint, error)
	Connections(ctx context.Context) ([]Connection, error)
}

type analyticsService struct {
	transcriptRepo  repositories.TranscriptRepository
	participantRepo repositories.ParticipantRepository
	logger          *zap.Logger
}

// NewService constructs the analytics service
func NewService(
	transcriptRepo repositories.TranscriptRepository,
	participantRepo repositories.ParticipantRepository,
	logger *zap.Logger,
) Service {
	return &analyticsService{
		transcriptRepo:  transcriptRepo,
		participantRepo: participantRepo,
		logger:          logger,
	}
}

// TopicFrequencies counts topics by exact text, most frequent first. Variant
// spellings of the same theme count separately.
func (s *analyticsService) TopicFrequencies(ctx context.Context) ([]repositories.TopicCount, error) {
	counts, err := s.transcriptRepo.TopicFrequencies(ctx)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return counts, nil
}

// ParticipantEngagement lists every participant with their meetings, busiest
// first; ties break alphabetically by name.
func (s *analyticsService) ParticipantEngagement(ctx context.Context) ([]Engagement, error) {
	participants, err := s.participantRepo.ListWithTranscripts(ctx)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	engagements := make([]Engagement, 0, len(participants))
	for _, p := range participants {
		meetings := p.Transcripts
		p.Transcripts = nil
		engagements = append(engagements, Engagement{Participant: p, Meetings: meetings})
	}
	sort.SliceStable(engagements, func(i, j int) bool {
		if len(engagements[i].Meetings) != len(engagements[j].Meetings) {
			return len(engagements[i].Meetings) > len(engagements[j].Meetings)
		}
		return engagements[i].Participant.Name < engagements[j].Participant.Name
	})
	return engagements, nil
}

// SentimentTrend averages the three-point sentiment score per UTC day,
// rounded to two decimals, oldest day first.
func (s *analyticsService) SentimentTrend(ctx context.Context) ([]TrendPoint, error) {
	points, err := s.transcriptRepo.SentimentPoints(ctx)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, p := range points {
		day := p.OccurredAt.UTC().Format("2006-01-02")
		sums[day] += p.Sentiment.Score()
		counts[day]++
	}

	days := make([]string, 0, len(sums))
	for day := range sums {
		days = append(days, day)
	}
	sort.Strings(days)

	trend := make([]TrendPoint, 0, len(days))
	for _, day := range days {
		avg := sums[day] / float64(counts[day])
		trend = append(trend, TrendPoint{
			Date:    day,
			Average: math.Round(avg*100) / 100,
		})
	}
	return trend, nil
}

// Connections builds the collaboration graph: one node per participant with
// the organization derived from their email domain, the distinct topics of
// their meetings in first-seen order, and how many meetings they attended.
func (s *analyticsService) Connections(ctx context.Context) ([]Connection, error) {
	participants, err := s.participantRepo.ListWithTranscriptTopics(ctx)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	connections := make([]Connection, 0, len(participants))
	for i := range participants {
		p := &participants[i]
		seen := make(map[string]struct{})
		topics := make([]string, 0)
		for _, t := range p.Transcripts {
			for _, topic := range t.Topics {
				if _, ok := seen[topic.Name]; ok {
					continue
				}
				seen[topic.Name] = struct{}{}
				topics = append(topics, topic.Name)
			}
		}
		connections = append(connections, Connection{
			Person:           p.Name,
			Organization:     p.Organization(),
			Topics:           topics,
			InteractionCount: len(p.Transcripts),
		})
	}
	return connections, nil
}
