package wsmodels

type ServerMessage struct {
	Time        string `json:"time"` // event time
	Code        string `json:"code"` // event code
	Msg         string `json:"msg"`  // event text
	ApplicantID string `json:"applicant_id,omitempty"`
	Status      string `json:"status,omitempty"`
}

const (
	CodeStatusChanged = "status_changed"
	CodeStageStale    = "stage_stale"
)
