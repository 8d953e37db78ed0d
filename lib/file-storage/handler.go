package filestorage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"onboard-tools-backend/db"
	applicantstore "onboard-tools-backend/lib/applicant/store"
	filesdbstorage "onboard-tools-backend/lib/file-storage/storage"
	"onboard-tools-backend/models"
	dbmodels "onboard-tools-backend/models/db"
	s3client "onboard-tools-backend/s3"
)

type Provider interface {
	UploadResume(ctx context.Context, applicantID string, file []byte, fileName string) error
	UploadDoc(ctx context.Context, applicantID string, file []byte, fileName string) error
	GetFile(ctx context.Context, fileID string) (body []byte, fileName string, err error)
	GetResume(ctx context.Context, applicantID string) (body []byte, fileName string, err error)
	GetDocList(ctx context.Context, applicantID string) ([]dbmodels.FileStorage, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		s3:             s3client.Instance,
		store:          filesdbstorage.NewInstance(db.DB),
		applicantStore: applicantstore.NewInstance(db.DB),
	}
}

type impl struct {
	s3             s3client.Provider
	store          filesdbstorage.Provider
	applicantStore applicantstore.Provider
}

func (i impl) UploadResume(ctx context.Context, applicantID string, file []byte, fileName string) error {
	return i.upload(ctx, applicantID, file, fileName, dbmodels.ResumeFileType)
}

func (i impl) UploadDoc(ctx context.Context, applicantID string, file []byte, fileName string) error {
	return i.upload(ctx, applicantID, file, fileName, dbmodels.DocumentFileType)
}

func (i impl) upload(ctx context.Context, applicantID string, file []byte, fileName string, fileType dbmodels.FileType) error {
	logger := log.
		WithField("applicant_id", applicantID).
		WithField("file_name", fileName)
	rec, err := i.applicantStore.GetByID(applicantID)
	if err != nil {
		logger.WithError(err).Error("failed to load applicant")
		return errors.New("failed to load applicant")
	}
	if rec == nil {
		return models.ErrApplicantNotFound
	}
	objectName := fmt.Sprintf("%v/%v_%v", applicantID, uuid.NewString(), fileName)
	err = i.s3.PutObject(ctx, objectName, file)
	if err != nil {
		logger.WithError(err).Error("failed to upload file to storage")
		return errors.New("failed to upload file to storage")
	}
	_, err = i.store.SaveFile(dbmodels.FileStorage{
		ApplicantID: applicantID,
		FileName:    fileName,
		FileType:    fileType,
		ObjectName:  objectName,
	})
	if err != nil {
		logger.WithError(err).Error("failed to save file record")
		return errors.New("failed to save file record")
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, fileID string) ([]byte, string, error) {
	rec, err := i.store.GetFile(fileID)
	if err != nil {
		log.WithError(err).WithField("file_id", fileID).Error("failed to load file record")
		return nil, "", errors.New("failed to load file record")
	}
	if rec == nil {
		return nil, "", models.ErrFileNotFound
	}
	return i.load(ctx, *rec)
}

func (i impl) GetResume(ctx context.Context, applicantID string) ([]byte, string, error) {
	rec, err := i.store.GetFileByType(applicantID, dbmodels.ResumeFileType)
	if err != nil {
		log.WithError(err).WithField("applicant_id", applicantID).Error("failed to load resume record")
		return nil, "", errors.New("failed to load resume record")
	}
	if rec == nil {
		return nil, "", models.ErrFileNotFound
	}
	return i.load(ctx, *rec)
}

func (i impl) GetDocList(ctx context.Context, applicantID string) ([]dbmodels.FileStorage, error) {
	return i.store.GetFileListByType(applicantID, dbmodels.DocumentFileType)
}

func (i impl) load(ctx context.Context, rec dbmodels.FileStorage) ([]byte, string, error) {
	body, err := i.s3.GetObject(ctx, rec.ObjectName)
	if err != nil {
		log.WithError(err).WithField("object_name", rec.ObjectName).Error("failed to load file from storage")
		return nil, "", errors.New("failed to load file from storage")
	}
	return body, rec.FileName, nil
}
