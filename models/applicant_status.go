package models

type ApplicantStatus string

const (
	ApplicantStatusApplied            ApplicantStatus = "Applied"
	ApplicantStatusInvitedToInterview ApplicantStatus = "Invited to Interview"
	ApplicantStatusInterviewScheduled ApplicantStatus = "Interview Scheduled"
	ApplicantStatusInvitedToTraining  ApplicantStatus = "Invited to Training"
	ApplicantStatusInTraining         ApplicantStatus = "In Training"
	ApplicantStatusGoLive             ApplicantStatus = "Go Live"
	ApplicantStatusDeclined           ApplicantStatus = "Declined"
	ApplicantStatusUnderReview        ApplicantStatus = "Under Review"
)

// PipelineStages is the ordered onboarding pipeline, no skipping on advance/move back
var PipelineStages = []ApplicantStatus{
	ApplicantStatusApplied,
	ApplicantStatusInvitedToInterview,
	ApplicantStatusInterviewScheduled,
	ApplicantStatusInvitedToTraining,
	ApplicantStatusInTraining,
	ApplicantStatusGoLive,
}

// AllStatuses lists every valid status, pipeline order first, side states last.
// Iteration order doubles as the tie-break order for dominant-status rollups.
var AllStatuses = []ApplicantStatus{
	ApplicantStatusApplied,
	ApplicantStatusInvitedToInterview,
	ApplicantStatusInterviewScheduled,
	ApplicantStatusInvitedToTraining,
	ApplicantStatusInTraining,
	ApplicantStatusGoLive,
	ApplicantStatusDeclined,
	ApplicantStatusUnderReview,
}

// allowedTransitions is the explicit transition table. Advance/move back only
// walk neighbouring pipeline stages; Declined is reachable from everything but
// itself; Under Review holds any non-terminal pipeline stage.
var allowedTransitions = map[ApplicantStatus][]ApplicantStatus{
	ApplicantStatusApplied:            {ApplicantStatusInvitedToInterview, ApplicantStatusDeclined, ApplicantStatusUnderReview},
	ApplicantStatusInvitedToInterview: {ApplicantStatusInterviewScheduled, ApplicantStatusApplied, ApplicantStatusDeclined, ApplicantStatusUnderReview},
	ApplicantStatusInterviewScheduled: {ApplicantStatusInvitedToTraining, ApplicantStatusInvitedToInterview, ApplicantStatusDeclined, ApplicantStatusUnderReview},
	ApplicantStatusInvitedToTraining:  {ApplicantStatusInTraining, ApplicantStatusInterviewScheduled, ApplicantStatusDeclined, ApplicantStatusUnderReview},
	ApplicantStatusInTraining:         {ApplicantStatusGoLive, ApplicantStatusInvitedToTraining, ApplicantStatusDeclined, ApplicantStatusUnderReview},
	ApplicantStatusGoLive:             {ApplicantStatusDeclined},
	ApplicantStatusDeclined:           {},
	ApplicantStatusUnderReview: {
		ApplicantStatusApplied,
		ApplicantStatusInvitedToInterview,
		ApplicantStatusInterviewScheduled,
		ApplicantStatusInvitedToTraining,
		ApplicantStatusInTraining,
		ApplicantStatusDeclined,
	},
}

func (s ApplicantStatus) IsValid() bool {
	for _, status := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s ApplicantStatus) IsTerminal() bool {
	return s == ApplicantStatusGoLive || s == ApplicantStatusDeclined
}

// PipelineIndex returns the position in the ordered pipeline,
// ok=false for side states.
func (s ApplicantStatus) PipelineIndex() (idx int, ok bool) {
	for i, stage := range PipelineStages {
		if s == stage {
			return i, true
		}
	}
	return 0, false
}

func (s ApplicantStatus) IsAllowTransition(target ApplicantStatus) bool {
	for _, status := range allowedTransitions[s] {
		if target == status {
			return true
		}
	}
	return false
}

// StageExpectedDays is the budget per pipeline stage used by the health
// classification: good within budget, warning over 1.5x, critical over 2x.
var StageExpectedDays = map[ApplicantStatus]int{
	ApplicantStatusApplied:            3,
	ApplicantStatusInvitedToInterview: 2,
	ApplicantStatusInterviewScheduled: 5,
	ApplicantStatusInvitedToTraining:  3,
	ApplicantStatusInTraining:         14,
	ApplicantStatusGoLive:             0,
}

type StageHealthLevel string

const (
	StageHealthGood     StageHealthLevel = "good"
	StageHealthWarning  StageHealthLevel = "warning"
	StageHealthCritical StageHealthLevel = "critical"
)
