package applicantapimodels

import (
	apimodels "onboard-tools-backend/models/api"
	dbmodels "onboard-tools-backend/models/db"
)

type ApplicantHistoryFilter struct {
	apimodels.Pagination
	ActionType dbmodels.ActionType `json:"action_type"` // optional filter
}

type ApplicantHistoryView struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // DD.MM.YYYY HH:MM
	ManagerName string `json:"manager_name"`
	ActionType  string `json:"action_type"`
	Description string `json:"description"`
	FromStatus  string `json:"from_status,omitempty"`
	ToStatus    string `json:"to_status,omitempty"`
}

func HistoryConvert(rec dbmodels.ApplicantHistory) ApplicantHistoryView {
	return ApplicantHistoryView{
		ID:          rec.ID,
		Date:        rec.CreatedAt.Format("02.01.2006 15:04"),
		ManagerName: rec.ManagerName,
		ActionType:  string(rec.ActionType),
		Description: rec.Changes.Description,
		FromStatus:  string(rec.Changes.From),
		ToStatus:    string(rec.Changes.To),
	}
}
