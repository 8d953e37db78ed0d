package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"onboard-tools-backend/models"
)

type ApplicantHistory struct {
	BaseModel
	ApplicantID string            `gorm:"type:varchar(36);index"`
	ManagerName string            `gorm:"type:varchar(255)"`
	ActionType  ActionType        `gorm:"type:varchar(50)"`
	Changes     TransitionChanges `gorm:"type:jsonb"`
}

func (j TransitionChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *TransitionChanges) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type TransitionChanges struct {
	Description string                 `json:"description"` // Human readable summary
	From        models.ApplicantStatus `json:"from,omitempty"`
	To          models.ApplicantStatus `json:"to,omitempty"`
}

type ActionType string

const (
	HistoryTypeAdded       ActionType = "added"        // Applicant record created
	HistoryTypeStageChange ActionType = "stage_change" // Moved along the pipeline
	HistoryTypeReject      ActionType = "reject"       // Applicant declined
	HistoryTypeHold        ActionType = "hold"         // Put under review
	HistoryTypeResume      ActionType = "resume"       // Returned from under review
	HistoryTypeComment     ActionType = "comment"      // Note attached to the applicant
)
