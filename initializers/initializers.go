package initializers

import (
	"context"

	"onboard-tools-backend/config"
	"onboard-tools-backend/fiberlog"
	"onboard-tools-backend/lib/analytics"
	"onboard-tools-backend/lib/applicant"
	applicanthistoryhandler "onboard-tools-backend/lib/applicant-history"
	"onboard-tools-backend/lib/auth"
	xlsexport "onboard-tools-backend/lib/export/xls"
	filestorage "onboard-tools-backend/lib/file-storage"
	"onboard-tools-backend/lib/pipeline"
	stalewatch "onboard-tools-backend/lib/stale-watch"
	connectionhub "onboard-tools-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	auth.NewHandler()
	filestorage.NewHandler()
	applicanthistoryhandler.NewHandler()
	applicant.NewHandler()
	pipeline.NewHandler()
	xlsexport.NewHandler()
	analytics.NewHandler()
	InitSeed()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// stage time budget check, pushes notices to connected boards
	stalewatch.StartWorker(ctx)
}
