package applicanthistorystore

import (
	"gorm.io/gorm"
	applicantapimodels "onboard-tools-backend/models/api/applicant"
	dbmodels "onboard-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApplicantHistory) (id string, err error)
	List(applicantID string, filter applicantapimodels.ApplicantHistoryFilter) ([]dbmodels.ApplicantHistory, error)
	ListCount(applicantID string, filter applicantapimodels.ApplicantHistoryFilter) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicantHistory) (string, error) {
	err := i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(applicantID string, filter applicantapimodels.ApplicantHistoryFilter) (list []dbmodels.ApplicantHistory, err error) {
	page, limit := filter.GetPage()
	list = []dbmodels.ApplicantHistory{}
	tx := i.db.
		Model(&dbmodels.ApplicantHistory{}).
		Where("applicant_id = ?", applicantID)
	i.addFilter(tx, filter)
	err = tx.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(applicantID string, filter applicantapimodels.ApplicantHistoryFilter) (int64, error) {
	var count int64
	tx := i.db.
		Model(&dbmodels.ApplicantHistory{}).
		Where("applicant_id = ?", applicantID)
	i.addFilter(tx, filter)
	err := tx.Count(&count).Error
	return count, err
}

func (i impl) addFilter(tx *gorm.DB, filter applicantapimodels.ApplicantHistoryFilter) {
	if filter.ActionType != "" {
		tx.Where("action_type = ?", filter.ActionType)
	}
}
