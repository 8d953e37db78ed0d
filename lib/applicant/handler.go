package applicant

import (
	"fmt"
	"time"

	"onboard-tools-backend/db"
	applicanthistorystore "onboard-tools-backend/lib/applicant-history/store"
	applicantstore "onboard-tools-backend/lib/applicant/store"
	pdfexport "onboard-tools-backend/lib/export/pdf"
	"onboard-tools-backend/models"
	applicantapimodels "onboard-tools-backend/models/api/applicant"
	dbmodels "onboard-tools-backend/models/db"
)

type Provider interface {
	CreateApplicant(managerName string, data applicantapimodels.ApplicantData) (id string, err error)
	GetApplicant(id string) (applicantapimodels.ApplicantView, error)
	ListOfApplicant(filter applicantapimodels.ApplicantFilter) (list []applicantapimodels.ApplicantView, rowCount int64, err error)
	Snapshot(filter applicantapimodels.ApplicantFilter) ([]dbmodels.Applicant, error)
	GetProfilePDF(id string) (pdfFile []byte, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        applicantstore.NewInstance(db.DB),
		historyStore: applicanthistorystore.NewInstance(db.DB),
	}
}

type impl struct {
	store        applicantstore.Provider
	historyStore applicanthistorystore.Provider
}

func (i impl) CreateApplicant(managerName string, data applicantapimodels.ApplicantData) (string, error) {
	now := time.Now()
	appliedDate, err := data.GetAppliedDate(now)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Applicant{
		Name:       data.Name,
		Email:      data.Email,
		Phone:      data.Phone,
		JobTitle:   data.JobTitle,
		Experience: data.Experience,
		Status:     models.ApplicantStatusApplied,
		// equals AppliedDate until the first transition
		AppliedDate:          appliedDate,
		LastStatusChangeDate: appliedDate,
		Rating:               data.Rating,
		City:                 data.City,
		Region:               data.Region,
		Country:              data.Country,
		Skills:               data.Skills,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	hist := dbmodels.ApplicantHistory{
		ApplicantID: id,
		ManagerName: managerName,
		ActionType:  dbmodels.HistoryTypeAdded,
		Changes: dbmodels.TransitionChanges{
			Description: "Applicant added",
			To:          models.ApplicantStatusApplied,
		},
	}
	err = i.store.UpdateWithHistory(id, nil, hist)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (i impl) GetApplicant(id string) (applicantapimodels.ApplicantView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	if rec == nil {
		return applicantapimodels.ApplicantView{}, models.ErrApplicantNotFound
	}
	return applicantapimodels.ApplicantConvert(*rec, time.Now()), nil
}

func (i impl) ListOfApplicant(filter applicantapimodels.ApplicantFilter) ([]applicantapimodels.ApplicantView, int64, error) {
	list, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	now := time.Now()
	result := make([]applicantapimodels.ApplicantView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicantapimodels.ApplicantConvert(rec, now))
	}
	return result, rowCount, nil
}

func (i impl) Snapshot(filter applicantapimodels.ApplicantFilter) ([]dbmodels.Applicant, error) {
	return i.store.Snapshot(filter)
}

func (i impl) GetProfilePDF(id string) ([]byte, string, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "", models.ErrApplicantNotFound
	}
	historyFilter := applicantapimodels.ApplicantHistoryFilter{}
	historyFilter.Limit = 50
	history, err := i.historyStore.List(id, historyFilter)
	if err != nil {
		return nil, "", err
	}
	pdfFile, err := pdfexport.GenerateApplicantProfile(*rec, history)
	if err != nil {
		return nil, "", err
	}
	fileName := fmt.Sprintf("applicant-%v.pdf", rec.ID)
	return pdfFile, fileName, nil
}
