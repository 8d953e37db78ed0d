package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "onboard-tools-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Applicant{}); err != nil {
		return errors.Wrap(err, "failed to migrate Applicant")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicantHistory{}); err != nil {
		return errors.Wrap(err, "failed to migrate ApplicantHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "failed to migrate FileStorage")
	}
	log.Info("migrations finished")
	return nil
}
