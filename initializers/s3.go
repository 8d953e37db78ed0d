package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	s3client "onboard-tools-backend/s3"
)

func InitS3() {
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to initialize S3 client")
		return
	}
	if err = client.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("S3 connection failed, bucket check returned an error")
	}
	s3client.Instance = client
	log.Info("S3 client initialized")
}
