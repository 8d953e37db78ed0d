package applicanthistoryhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"onboard-tools-backend/db"
	applicanthistorystore "onboard-tools-backend/lib/applicant-history/store"
	applicantstore "onboard-tools-backend/lib/applicant/store"
	"onboard-tools-backend/models"
	applicantapimodels "onboard-tools-backend/models/api/applicant"
	dbmodels "onboard-tools-backend/models/db"
)

type Provider interface {
	List(applicantID string, filter applicantapimodels.ApplicantHistoryFilter) ([]applicantapimodels.ApplicantHistoryView, int64, error)
	SaveNote(managerName, applicantID string, note applicantapimodels.ApplicantNote) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          applicanthistorystore.NewInstance(db.DB),
		applicantStore: applicantstore.NewInstance(db.DB),
	}
}

type impl struct {
	store          applicanthistorystore.Provider
	applicantStore applicantstore.Provider
}

func (i impl) List(applicantID string, filter applicantapimodels.ApplicantHistoryFilter) ([]applicantapimodels.ApplicantHistoryView, int64, error) {
	rowCount, err := i.store.ListCount(applicantID, filter)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []applicantapimodels.ApplicantHistoryView{}, rowCount, nil
	}

	list, err := i.store.List(applicantID, filter)
	if err != nil {
		log.WithError(err).Error("failed to load applicant activity log")
		return nil, 0, errors.New("failed to load applicant activity log")
	}
	result := make([]applicantapimodels.ApplicantHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicantapimodels.HistoryConvert(rec))
	}
	return result, rowCount, nil
}

// SaveNote appends the note to the applicant record and logs it, in one
// transaction.
func (i impl) SaveNote(managerName, applicantID string, note applicantapimodels.ApplicantNote) error {
	logger := log.WithField("applicant_id", applicantID)
	rec, err := i.applicantStore.GetByID(applicantID)
	if err != nil {
		logger.WithError(err).Error("failed to load applicant")
		return errors.New("failed to load applicant")
	}
	if rec == nil {
		return models.ErrApplicantNotFound
	}
	notes := note.Note
	if rec.Notes != "" {
		notes = rec.Notes + "\n" + note.Note
	}
	updMap := map[string]interface{}{
		"notes": notes,
	}
	hist := dbmodels.ApplicantHistory{
		ManagerName: managerName,
		ActionType:  dbmodels.HistoryTypeComment,
		Changes:     dbmodels.TransitionChanges{Description: note.Note},
	}
	err = i.applicantStore.UpdateWithHistory(applicantID, updMap, hist)
	if err != nil {
		logger.WithError(err).Error("failed to save applicant note")
		return errors.New("failed to save applicant note")
	}
	return nil
}
