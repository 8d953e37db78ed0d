package dbmodels

import (
	"time"

	"github.com/lib/pq"
	"onboard-tools-backend/lib/utils/helpers"
	"onboard-tools-backend/models"
)

type Applicant struct {
	BaseModel
	Name                 string                 `gorm:"type:varchar(255)"`
	Email                string                 `gorm:"type:varchar(255)"`
	Phone                string                 `gorm:"type:varchar(255)"`
	JobTitle             string                 `gorm:"type:varchar(255)"`
	Experience           string                 `gorm:"type:varchar(255)"`
	Status               models.ApplicantStatus `gorm:"type:varchar(50);index"`
	PreviousStatus       models.ApplicantStatus `gorm:"type:varchar(50)"` // stage left when entering Under Review
	AppliedDate          time.Time              `gorm:"index"`
	LastStatusChangeDate time.Time
	InterviewTime        string `gorm:"type:varchar(255)"` // retained as history once set
	TrainingSession      string `gorm:"type:varchar(255)"` // retained as history once set
	Notes                string
	Rating               float64
	City                 string         `gorm:"type:varchar(255)"`
	Region               string         `gorm:"type:varchar(255)"`
	Country              string         `gorm:"type:varchar(255);index"`
	Skills               pq.StringArray `gorm:"type:text[]"`
}

// StageAgeDays is the whole calendar days spent in the current status.
func (a Applicant) StageAgeDays(now time.Time) int {
	return helpers.CalendarDaysBetween(a.LastStatusChangeDate, now)
}
