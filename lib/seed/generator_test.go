package seed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"onboard-tools-backend/models"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	rnd := rand.New(rand.NewSource(42))
	list := Generate(300, now, rnd)

	t.Run(`produces the requested count with unique ids`, func(t *testing.T) {
		require.Len(t, list, 300)
		seen := map[string]bool{}
		for _, rec := range list {
			require.NotEmpty(t, rec.ID)
			require.False(t, seen[rec.ID])
			seen[rec.ID] = true
		}
	})

	t.Run(`every record holds a valid status`, func(t *testing.T) {
		for _, rec := range list {
			require.True(t, rec.Status.IsValid(), string(rec.Status))
		}
	})

	t.Run(`date invariants hold`, func(t *testing.T) {
		for _, rec := range list {
			require.False(t, rec.AppliedDate.After(now))
			require.False(t, rec.LastStatusChangeDate.Before(rec.AppliedDate))
			require.False(t, rec.AppliedDate.Before(now.AddDate(0, 0, -91)))
		}
	})

	t.Run(`stage extras are present where the stage requires them`, func(t *testing.T) {
		for _, rec := range list {
			effective := rec.Status
			if rec.Status == models.ApplicantStatusUnderReview {
				require.True(t, rec.PreviousStatus.IsValid())
				effective = rec.PreviousStatus
			}
			switch effective {
			case models.ApplicantStatusInterviewScheduled:
				require.NotEmpty(t, rec.InterviewTime)
			case models.ApplicantStatusInvitedToTraining, models.ApplicantStatusInTraining:
				require.NotEmpty(t, rec.TrainingSession)
			}
		}
	})

	t.Run(`contact and location fields are filled`, func(t *testing.T) {
		for _, rec := range list {
			require.NotEmpty(t, rec.Name)
			require.NotEmpty(t, rec.Email)
			require.NotEmpty(t, rec.Country)
			require.NotEmpty(t, rec.City)
			require.NotEmpty(t, rec.Skills)
		}
	})

	t.Run(`ratings stay in range when set`, func(t *testing.T) {
		for _, rec := range list {
			if rec.Rating != 0 {
				require.GreaterOrEqual(t, rec.Rating, 1.0)
				require.LessOrEqual(t, rec.Rating, 5.0)
			}
		}
	})
}
