package pipeline

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"onboard-tools-backend/models"
	applicantapimodels "onboard-tools-backend/models/api/applicant"
	dbmodels "onboard-tools-backend/models/db"
)

// TransitionPlan is the full effect of one transition: the column updates and
// the history entry, applied together in one transaction.
type TransitionPlan struct {
	Updates   map[string]interface{}
	NewStatus models.ApplicantStatus
	Action    dbmodels.ActionType
	Changes   dbmodels.TransitionChanges
}

func newPlan(rec dbmodels.Applicant, target models.ApplicantStatus, now time.Time) TransitionPlan {
	return TransitionPlan{
		Updates: map[string]interface{}{
			"status":                  target,
			"last_status_change_date": now,
		},
		NewStatus: target,
		Changes: dbmodels.TransitionChanges{
			From: rec.Status,
			To:   target,
		},
	}
}

// PlanAdvance moves to the next stage of the ordered pipeline.
func PlanAdvance(rec dbmodels.Applicant, req applicantapimodels.TransitionRequest, now time.Time) (TransitionPlan, error) {
	idx, ok := rec.Status.PipelineIndex()
	if !ok || idx == len(models.PipelineStages)-1 {
		return TransitionPlan{}, errors.Wrapf(models.ErrInvalidTransition, "cannot advance from %s", rec.Status)
	}
	target := models.PipelineStages[idx+1]
	if !rec.Status.IsAllowTransition(target) {
		return TransitionPlan{}, errors.Wrapf(models.ErrInvalidTransition, "transition %s -> %s is not allowed", rec.Status, target)
	}
	plan := newPlan(rec, target, now)
	if err := applyStageExtras(&plan, rec, target, req.InterviewTime, req.TrainingSession); err != nil {
		return TransitionPlan{}, err
	}
	plan.Action = dbmodels.HistoryTypeStageChange
	plan.Changes.Description = fmt.Sprintf("Advanced to %s", target)
	return plan, nil
}

// PlanMoveBack returns to the previous stage of the ordered pipeline.
func PlanMoveBack(rec dbmodels.Applicant, now time.Time) (TransitionPlan, error) {
	idx, ok := rec.Status.PipelineIndex()
	if !ok || idx == 0 {
		return TransitionPlan{}, errors.Wrapf(models.ErrInvalidTransition, "cannot move back from %s", rec.Status)
	}
	target := models.PipelineStages[idx-1]
	if !rec.Status.IsAllowTransition(target) {
		return TransitionPlan{}, errors.Wrapf(models.ErrInvalidTransition, "transition %s -> %s is not allowed", rec.Status, target)
	}
	plan := newPlan(rec, target, now)
	plan.Action = dbmodels.HistoryTypeStageChange
	plan.Changes.Description = fmt.Sprintf("Moved back to %s", target)
	return plan, nil
}

// PlanSetStatus is the permissive manager jump: any valid status, required
// stage fields still enforced.
func PlanSetStatus(rec dbmodels.Applicant, req applicantapimodels.StatusRequest, now time.Time) (TransitionPlan, error) {
	if !req.Status.IsValid() {
		return TransitionPlan{}, errors.Wrapf(models.ErrInvalidTransition, "unknown status %s", req.Status)
	}
	plan := newPlan(rec, req.Status, now)
	if err := applyStageExtras(&plan, rec, req.Status, req.InterviewTime, req.TrainingSession); err != nil {
		return TransitionPlan{}, err
	}
	if req.Note != "" {
		plan.Updates["notes"] = appendNote(rec.Notes, req.Note)
	}
	plan.Action = dbmodels.HistoryTypeStageChange
	plan.Changes.Description = fmt.Sprintf("Status set to %s", req.Status)
	if req.Status == models.ApplicantStatusUnderReview {
		plan.Updates["previous_status"] = rec.Status
		plan.Action = dbmodels.HistoryTypeHold
		plan.Changes.Description = "Put under review"
	}
	return plan, nil
}

// PlanDecline always lands in Declined and composes the reason into notes.
// Declining an already declined applicant keeps the status and accumulates
// the note.
func PlanDecline(rec dbmodels.Applicant, req applicantapimodels.DeclineRequest, now time.Time) (TransitionPlan, error) {
	plan := newPlan(rec, models.ApplicantStatusDeclined, now)
	note := "Declined"
	if req.Reason != "" {
		note = fmt.Sprintf("Declined: %s", req.Reason)
	}
	if req.Fraud {
		note += " [flagged as fraud]"
	}
	plan.Updates["notes"] = appendNote(rec.Notes, note)
	plan.Action = dbmodels.HistoryTypeReject
	plan.Changes.Description = note
	return plan, nil
}

// PlanHold puts a non-terminal pipeline applicant under review, remembering
// the stage it left.
func PlanHold(rec dbmodels.Applicant, now time.Time) (TransitionPlan, error) {
	if !rec.Status.IsAllowTransition(models.ApplicantStatusUnderReview) {
		return TransitionPlan{}, errors.Wrapf(models.ErrInvalidTransition, "cannot hold from %s", rec.Status)
	}
	plan := newPlan(rec, models.ApplicantStatusUnderReview, now)
	plan.Updates["previous_status"] = rec.Status
	plan.Action = dbmodels.HistoryTypeHold
	plan.Changes.Description = "Put under review"
	return plan, nil
}

// PlanResume returns an applicant under review to the stage it left.
func PlanResume(rec dbmodels.Applicant, now time.Time) (TransitionPlan, error) {
	if rec.Status != models.ApplicantStatusUnderReview {
		return TransitionPlan{}, errors.Wrapf(models.ErrInvalidTransition, "cannot resume from %s", rec.Status)
	}
	target := rec.PreviousStatus
	if !rec.Status.IsAllowTransition(target) {
		return TransitionPlan{}, errors.Wrap(models.ErrInvalidTransition, "no pipeline stage to resume to")
	}
	plan := newPlan(rec, target, now)
	plan.Action = dbmodels.HistoryTypeResume
	plan.Changes.Description = fmt.Sprintf("Resumed to %s", target)
	return plan, nil
}

// applyStageExtras enforces the supplementary fields a stage requires:
// interview time for Interview Scheduled, training session for the training
// stages. Previously captured values are retained as history and satisfy the
// requirement on re-entry.
func applyStageExtras(plan *TransitionPlan, rec dbmodels.Applicant, target models.ApplicantStatus, interviewTime, trainingSession string) error {
	if interviewTime != "" {
		plan.Updates["interview_time"] = interviewTime
	}
	if trainingSession != "" {
		plan.Updates["training_session"] = trainingSession
	}
	switch target {
	case models.ApplicantStatusInterviewScheduled:
		if interviewTime == "" && rec.InterviewTime == "" {
			return errors.Wrap(models.ErrMissingField, "interview_time is required for Interview Scheduled")
		}
	case models.ApplicantStatusInvitedToTraining, models.ApplicantStatusInTraining:
		if trainingSession == "" && rec.TrainingSession == "" {
			return errors.Wrapf(models.ErrMissingField, "training_session is required for %s", target)
		}
	}
	return nil
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}
