package applicantapimodels

import (
	"time"

	"github.com/pkg/errors"
	"onboard-tools-backend/models"
	apimodels "onboard-tools-backend/models/api"
	dbmodels "onboard-tools-backend/models/db"
)

const dateLayout = "2006-01-02"

// recentWindow marks an applicant as recently changed on the board.
const recentWindow = 24 * time.Hour

type ApplicantData struct {
	Name        string   `json:"name"`         // Full name
	Email       string   `json:"email"`        // Email
	Phone       string   `json:"phone"`        // Phone
	JobTitle    string   `json:"job_title"`    // Position applied for
	Experience  string   `json:"experience"`   // Experience summary
	AppliedDate string   `json:"applied_date"` // YYYY-MM-DD, defaults to today
	Rating      float64  `json:"rating"`       // Optional, 1.0-5.0
	City        string   `json:"city"`
	Region      string   `json:"region"`
	Country     string   `json:"country"`
	Skills      []string `json:"skills"`
}

func (a ApplicantData) Validate() error {
	if a.Name == "" {
		return errors.New("applicant name is required")
	}
	if a.Email == "" {
		return errors.New("applicant email is required")
	}
	if a.Rating != 0 && (a.Rating < 1 || a.Rating > 5) {
		return errors.New("rating must be between 1.0 and 5.0")
	}
	if _, err := a.GetAppliedDate(time.Now()); err != nil {
		return errors.New("invalid applied date format, expected YYYY-MM-DD")
	}
	return nil
}

func (a ApplicantData) GetAppliedDate(now time.Time) (time.Time, error) {
	if a.AppliedDate == "" {
		return now, nil
	}
	return time.Parse(dateLayout, a.AppliedDate)
}

type ApplicantView struct {
	ApplicantData
	ID                   string                 `json:"id"`
	Status               models.ApplicantStatus `json:"status"`
	PreviousStatus       models.ApplicantStatus `json:"previous_status,omitempty"` // stage held before Under Review
	LastStatusChangeDate string                 `json:"last_status_change_date"`   // YYYY-MM-DD
	InterviewTime        string                 `json:"interview_time,omitempty"`
	TrainingSession      string                 `json:"training_session,omitempty"`
	Notes                string                 `json:"notes,omitempty"`
	StageDays            int                    `json:"stage_days"`       // days spent in the current status
	RecentlyChanged      bool                   `json:"recently_changed"` // derived, not stored
}

func ApplicantConvert(rec dbmodels.Applicant, now time.Time) ApplicantView {
	return ApplicantView{
		ApplicantData: ApplicantData{
			Name:        rec.Name,
			Email:       rec.Email,
			Phone:       rec.Phone,
			JobTitle:    rec.JobTitle,
			Experience:  rec.Experience,
			AppliedDate: rec.AppliedDate.Format(dateLayout),
			Rating:      rec.Rating,
			City:        rec.City,
			Region:      rec.Region,
			Country:     rec.Country,
			Skills:      rec.Skills,
		},
		ID:                   rec.ID,
		Status:               rec.Status,
		PreviousStatus:       rec.PreviousStatus,
		LastStatusChangeDate: rec.LastStatusChangeDate.Format(dateLayout),
		InterviewTime:        rec.InterviewTime,
		TrainingSession:      rec.TrainingSession,
		Notes:                rec.Notes,
		StageDays:            rec.StageAgeDays(now),
		RecentlyChanged:      now.Sub(rec.LastStatusChangeDate) < recentWindow,
	}
}

type ApplicantFilter struct {
	apimodels.Pagination
	Search      string                 `json:"search"`       // name/email/phone substring
	Status      models.ApplicantStatus `json:"status"`       // exact status
	Country     string                 `json:"country"`      // exact country
	AppliedFrom string                 `json:"applied_from"` // YYYY-MM-DD inclusive
	AppliedTo   string                 `json:"applied_to"`   // YYYY-MM-DD inclusive
}

func (f ApplicantFilter) Validate() error {
	if f.Status != "" && !f.Status.IsValid() {
		return errors.Errorf("unknown status: %s", f.Status)
	}
	if _, _, err := f.GetPeriod(); err != nil {
		return err
	}
	return nil
}

func (f ApplicantFilter) GetPeriod() (from, to *time.Time, err error) {
	if f.AppliedFrom != "" {
		date, err := time.Parse(dateLayout, f.AppliedFrom)
		if err != nil {
			return nil, nil, errors.New("invalid applied_from format, expected YYYY-MM-DD")
		}
		from = &date
	}
	if f.AppliedTo != "" {
		date, err := time.Parse(dateLayout, f.AppliedTo)
		if err != nil {
			return nil, nil, errors.New("invalid applied_to format, expected YYYY-MM-DD")
		}
		end := date.AddDate(0, 0, 1)
		to = &end
	}
	return from, to, nil
}

// TransitionRequest carries the extra fields a forward step may require:
// interview_time entering Interview Scheduled, training_session entering
// Invited to Training or In Training.
type TransitionRequest struct {
	InterviewTime   string `json:"interview_time,omitempty"`
	TrainingSession string `json:"training_session,omitempty"`
}

type StatusRequest struct {
	Status          models.ApplicantStatus `json:"status"`
	InterviewTime   string                 `json:"interview_time,omitempty"`
	TrainingSession string                 `json:"training_session,omitempty"`
	Note            string                 `json:"note,omitempty"`
}

func (r StatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.Errorf("unknown status: %s", r.Status)
	}
	return nil
}

type DeclineRequest struct {
	Reason string `json:"reason"` // appended to applicant notes
	Fraud  bool   `json:"fraud"`  // annotates the note with a fraud flag
}

type ApplicantNote struct {
	Note string `json:"note"`
}

func (n ApplicantNote) Validate() error {
	if n.Note == "" {
		return errors.New("note text is required")
	}
	return nil
}
