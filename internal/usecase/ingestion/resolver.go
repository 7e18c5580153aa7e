package ingestion

import (
	"context"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// resolveParticipants upserts and links attendees one at a time, in request
// order. The first failure aborts the whole request. Repeated emails within
// the same request are skipped after their first appearance.
func (s *ingestService) resolveParticipants(ctx context.Context, transcript *entities.Transcript, inputs []ParticipantInput) error {
	seen := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		if _, ok := seen[in.Email]; ok {
			continue
		}
		seen[in.Email] = struct{}{}
		participant := entities.NewParticipant(in.Name, in.Email, in.Role)
		if err := s.participantRepo.UpsertByEmail(ctx, participant); err != nil {
			return apperrors.ErrDBQueryFailed(err)
		}
		// Re-read so the link always points at the canonical record, not the
		// candidate row the upsert may have discarded.
		canonical, err := s.participantRepo.FindByEmail(ctx, in.Email)
		if err != nil {
			return apperrors.ErrDBQueryFailed(err)
		}
		if canonical == nil {
			return apperrors.ErrInternal(entities.ErrParticipantNotFound)
		}
		if err := s.participantRepo.Link(ctx, canonical.ID, transcript.ID); err != nil {
			return apperrors.ErrDBQueryFailed(err)
		}
		transcript.Participants = append(transcript.Participants, *canonical)
	}
	return nil
}
