package applicantstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"onboard-tools-backend/models"
	applicantapimodels "onboard-tools-backend/models/api/applicant"
	dbmodels "onboard-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Applicant) (id string, err error)
	CreateBatch(list []dbmodels.Applicant) error
	Update(id string, updMap map[string]interface{}) error
	UpdateWithHistory(id string, updMap map[string]interface{}, hist dbmodels.ApplicantHistory) error
	GetByID(id string) (rec *dbmodels.Applicant, err error)
	List(filter applicantapimodels.ApplicantFilter) (list []dbmodels.Applicant, rowCount int64, err error)
	Snapshot(filter applicantapimodels.ApplicantFilter) (list []dbmodels.Applicant, err error)
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Applicant) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateBatch(list []dbmodels.Applicant) error {
	if len(list) == 0 {
		return nil
	}
	return i.db.CreateInBatches(&list, 100).Error
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Applicant{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrApplicantNotFound
	}
	return nil
}

// UpdateWithHistory applies the record update and the history entry in one
// transaction, so a transition is visible all-or-nothing.
func (i impl) UpdateWithHistory(id string, updMap map[string]interface{}, hist dbmodels.ApplicantHistory) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if len(updMap) != 0 {
			upd := tx.
				Model(&dbmodels.Applicant{}).
				Where("id = ?", id).
				Updates(updMap)
			if upd.Error != nil {
				return upd.Error
			}
			if upd.RowsAffected == 0 {
				return models.ErrApplicantNotFound
			}
		}
		hist.ApplicantID = id
		return tx.Create(&hist).Error
	})
}

func (i impl) GetByID(id string) (*dbmodels.Applicant, error) {
	rec := dbmodels.Applicant{}
	err := i.db.
		Model(&dbmodels.Applicant{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter applicantapimodels.ApplicantFilter) (list []dbmodels.Applicant, rowCount int64, err error) {
	tx := i.db.Model(&dbmodels.Applicant{})
	if err = i.addFilter(tx, filter); err != nil {
		return nil, 0, err
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	list = []dbmodels.Applicant{}
	err = tx.
		Order("applied_date desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

// Snapshot loads every record matching the filter, no pagination.
// The analytics aggregations run over this slice.
func (i impl) Snapshot(filter applicantapimodels.ApplicantFilter) (list []dbmodels.Applicant, err error) {
	tx := i.db.Model(&dbmodels.Applicant{})
	if err = i.addFilter(tx, filter); err != nil {
		return nil, err
	}
	list = []dbmodels.Applicant{}
	err = tx.Order("applied_date").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count() (int64, error) {
	var count int64
	err := i.db.Model(&dbmodels.Applicant{}).Count(&count).Error
	return count, err
}

func (i impl) addFilter(tx *gorm.DB, filter applicantapimodels.ApplicantFilter) error {
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(name) like ? or LOWER(email) like ? or phone like ?", searchValue, searchValue, searchValue)
	}
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.Country != "" {
		tx.Where("country = ?", filter.Country)
	}
	from, to, err := filter.GetPeriod()
	if err != nil {
		return err
	}
	if from != nil {
		tx.Where("applied_date >= ?", *from)
	}
	if to != nil {
		tx.Where("applied_date < ?", *to)
	}
	return nil
}
