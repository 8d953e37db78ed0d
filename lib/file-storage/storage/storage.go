package filesdbstorage

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "onboard-tools-backend/models/db"
)

type Provider interface {
	SaveFile(rec dbmodels.FileStorage) (id string, err error)
	GetFile(id string) (rec *dbmodels.FileStorage, err error)
	GetFileByType(applicantID string, fileType dbmodels.FileType) (rec *dbmodels.FileStorage, err error)
	GetFileListByType(applicantID string, fileType dbmodels.FileType) (list []dbmodels.FileStorage, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

func (i impl) SaveFile(rec dbmodels.FileStorage) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetFile(id string) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Model(&dbmodels.FileStorage{}).
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

func (i impl) GetFileByType(applicantID string, fileType dbmodels.FileType) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Model(&dbmodels.FileStorage{}).
		Where("applicant_id = ? AND file_type = ?", applicantID, fileType).
		Order("created_at desc").
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

func (i impl) GetFileListByType(applicantID string, fileType dbmodels.FileType) (list []dbmodels.FileStorage, err error) {
	err = i.db.
		Model(&dbmodels.FileStorage{}).
		Where("applicant_id = ? AND file_type = ?", applicantID, fileType).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
