package pipeline

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"onboard-tools-backend/models"
	applicantapimodels "onboard-tools-backend/models/api/applicant"
	dbmodels "onboard-tools-backend/models/db"
)

func testApplicant(status models.ApplicantStatus) dbmodels.Applicant {
	return dbmodels.Applicant{
		BaseModel:            dbmodels.BaseModel{ID: "rec-1"},
		Name:                 "Jordan Blake",
		Email:                "jordan.blake@example.com",
		Status:               status,
		AppliedDate:          time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		LastStatusChangeDate: time.Date(2026, 8, 10, 10, 0, 0, 0, time.UTC),
	}
}

func TestPlanAdvance(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	t.Run(`advance walks the pipeline in order`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusApplied)
		plan, err := PlanAdvance(rec, applicantapimodels.TransitionRequest{}, now)
		require.NoError(t, err)
		require.Equal(t, models.ApplicantStatusInvitedToInterview, plan.NewStatus)
		require.Equal(t, models.ApplicantStatusInvitedToInterview, plan.Updates["status"])
		require.Equal(t, now, plan.Updates["last_status_change_date"])
		require.Equal(t, dbmodels.HistoryTypeStageChange, plan.Action)
		require.Equal(t, models.ApplicantStatusApplied, plan.Changes.From)
	})

	t.Run(`advance from the last stage fails`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusGoLive)
		_, err := PlanAdvance(rec, applicantapimodels.TransitionRequest{}, now)
		require.Error(t, err)
		require.True(t, errors.Is(err, models.ErrInvalidTransition))
	})

	t.Run(`advance from side states fails`, func(t *testing.T) {
		for _, status := range []models.ApplicantStatus{models.ApplicantStatusDeclined, models.ApplicantStatusUnderReview} {
			rec := testApplicant(status)
			_, err := PlanAdvance(rec, applicantapimodels.TransitionRequest{}, now)
			require.True(t, errors.Is(err, models.ErrInvalidTransition), string(status))
		}
	})

	t.Run(`interview time is required entering Interview Scheduled`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusInvitedToInterview)
		_, err := PlanAdvance(rec, applicantapimodels.TransitionRequest{}, now)
		require.True(t, errors.Is(err, models.ErrMissingField))

		plan, err := PlanAdvance(rec, applicantapimodels.TransitionRequest{InterviewTime: "2026-08-25 14:00"}, now)
		require.NoError(t, err)
		require.Equal(t, "2026-08-25 14:00", plan.Updates["interview_time"])
	})

	t.Run(`training session is required entering Invited to Training`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusInterviewScheduled)
		_, err := PlanAdvance(rec, applicantapimodels.TransitionRequest{}, now)
		require.True(t, errors.Is(err, models.ErrMissingField))

		plan, err := PlanAdvance(rec, applicantapimodels.TransitionRequest{TrainingSession: "Morning cohort"}, now)
		require.NoError(t, err)
		require.Equal(t, "Morning cohort", plan.Updates["training_session"])
	})

	t.Run(`previously captured extras satisfy the requirement on re-entry`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusInvitedToInterview)
		rec.InterviewTime = "2026-08-25 14:00"
		_, err := PlanAdvance(rec, applicantapimodels.TransitionRequest{}, now)
		require.NoError(t, err)
	})
}

func TestPlanMoveBack(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	t.Run(`move back walks the pipeline in reverse`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusInTraining)
		plan, err := PlanMoveBack(rec, now)
		require.NoError(t, err)
		require.Equal(t, models.ApplicantStatusInvitedToTraining, plan.NewStatus)
	})

	t.Run(`move back from the first stage fails`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusApplied)
		_, err := PlanMoveBack(rec, now)
		require.True(t, errors.Is(err, models.ErrInvalidTransition))
	})

	t.Run(`advance then move back restores the stage`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusInvitedToInterview)
		rec.InterviewTime = "2026-08-25 14:00"
		forward, err := PlanAdvance(rec, applicantapimodels.TransitionRequest{}, now)
		require.NoError(t, err)

		moved := rec
		moved.Status = forward.NewStatus
		back, err := PlanMoveBack(moved, now)
		require.NoError(t, err)
		require.Equal(t, rec.Status, back.NewStatus)
	})
}

func TestPlanSetStatus(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	t.Run(`jumps to any valid status`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusApplied)
		plan, err := PlanSetStatus(rec, applicantapimodels.StatusRequest{
			Status:          models.ApplicantStatusInTraining,
			TrainingSession: "Evening cohort",
		}, now)
		require.NoError(t, err)
		require.Equal(t, models.ApplicantStatusInTraining, plan.NewStatus)
	})

	t.Run(`unknown status fails`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusApplied)
		_, err := PlanSetStatus(rec, applicantapimodels.StatusRequest{Status: "Hired"}, now)
		require.True(t, errors.Is(err, models.ErrInvalidTransition))
	})

	t.Run(`stage fields are still enforced`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusApplied)
		_, err := PlanSetStatus(rec, applicantapimodels.StatusRequest{Status: models.ApplicantStatusInterviewScheduled}, now)
		require.True(t, errors.Is(err, models.ErrMissingField))
	})

	t.Run(`jump to Under Review remembers the stage it left`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusInterviewScheduled)
		plan, err := PlanSetStatus(rec, applicantapimodels.StatusRequest{Status: models.ApplicantStatusUnderReview}, now)
		require.NoError(t, err)
		require.Equal(t, models.ApplicantStatusInterviewScheduled, plan.Updates["previous_status"])
		require.Equal(t, dbmodels.HistoryTypeHold, plan.Action)
	})
}

func TestPlanDecline(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	t.Run(`decline works from every status`, func(t *testing.T) {
		for _, status := range models.AllStatuses {
			rec := testApplicant(status)
			plan, err := PlanDecline(rec, applicantapimodels.DeclineRequest{Reason: "position closed"}, now)
			require.NoError(t, err, string(status))
			require.Equal(t, models.ApplicantStatusDeclined, plan.NewStatus)
		}
	})

	t.Run(`reason lands in notes with the fraud flag`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusApplied)
		plan, err := PlanDecline(rec, applicantapimodels.DeclineRequest{Reason: "fake references", Fraud: true}, now)
		require.NoError(t, err)
		require.Equal(t, "Declined: fake references [flagged as fraud]", plan.Updates["notes"])
	})

	t.Run(`repeated declines accumulate notes`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusApplied)
		first, err := PlanDecline(rec, applicantapimodels.DeclineRequest{Reason: "no show"}, now)
		require.NoError(t, err)

		declined := rec
		declined.Status = models.ApplicantStatusDeclined
		declined.Notes = first.Updates["notes"].(string)
		second, err := PlanDecline(declined, applicantapimodels.DeclineRequest{Reason: "no show again"}, now)
		require.NoError(t, err)
		require.Equal(t, models.ApplicantStatusDeclined, second.NewStatus)
		require.Equal(t, "Declined: no show\nDeclined: no show again", second.Updates["notes"])
	})
}

func TestPlanHoldResume(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	t.Run(`hold remembers the stage and resume restores it`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusInvitedToTraining)
		hold, err := PlanHold(rec, now)
		require.NoError(t, err)
		require.Equal(t, models.ApplicantStatusUnderReview, hold.NewStatus)
		require.Equal(t, models.ApplicantStatusInvitedToTraining, hold.Updates["previous_status"])

		held := rec
		held.Status = models.ApplicantStatusUnderReview
		held.PreviousStatus = models.ApplicantStatusInvitedToTraining
		resume, err := PlanResume(held, now)
		require.NoError(t, err)
		require.Equal(t, models.ApplicantStatusInvitedToTraining, resume.NewStatus)
	})

	t.Run(`hold is not available for terminal statuses`, func(t *testing.T) {
		for _, status := range []models.ApplicantStatus{models.ApplicantStatusGoLive, models.ApplicantStatusDeclined} {
			rec := testApplicant(status)
			_, err := PlanHold(rec, now)
			require.True(t, errors.Is(err, models.ErrInvalidTransition), string(status))
		}
	})

	t.Run(`resume requires Under Review`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusApplied)
		_, err := PlanResume(rec, now)
		require.True(t, errors.Is(err, models.ErrInvalidTransition))
	})

	t.Run(`resume without a remembered stage fails`, func(t *testing.T) {
		rec := testApplicant(models.ApplicantStatusUnderReview)
		_, err := PlanResume(rec, now)
		require.True(t, errors.Is(err, models.ErrInvalidTransition))
	})
}
