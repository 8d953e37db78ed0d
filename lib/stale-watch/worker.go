package stalewatch

import (
	"context"
	"fmt"
	"time"

	"onboard-tools-backend/config"
	"onboard-tools-backend/lib/analytics"
	"onboard-tools-backend/lib/applicant"
	baseworker "onboard-tools-backend/lib/utils/base-worker"
	connectionhub "onboard-tools-backend/lib/ws/hub/connection-hub"
	"onboard-tools-backend/models"
	analyticsapimodels "onboard-tools-backend/models/api/analytics"
	wsmodels "onboard-tools-backend/models/ws"
)

// Periodically checks how long applicants sit in each waiting stage and
// pushes a notice to connected boards when a stage runs over its budget.

func StartWorker(ctx context.Context) {
	period := time.Duration(config.Conf.Worker.StaleCheckPeriodMin) * time.Minute
	worker := impl{
		BaseImpl:          baseworker.NewInstance("stale-watch", time.Minute, period),
		applicantProvider: applicant.Instance,
		hub:               connectionhub.Instance,
	}
	worker.Run(ctx, worker.check)
}

type impl struct {
	*baseworker.BaseImpl
	applicantProvider applicant.Provider
	hub               connectionhub.Provider
}

func (i impl) check(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.applicantProvider.Snapshot(analyticsapimodels.AnalyticsFilter{}.ToApplicantFilter())
	if err != nil {
		logger.WithError(err).Error("failed to load applicants")
		return
	}
	now := time.Now()
	data := analytics.Health(list, now)
	for _, stage := range data.Stages {
		if stage.Health == models.StageHealthGood {
			continue
		}
		logger.
			WithField("stage", string(stage.Stage)).
			WithField("avg_days", stage.AvgDays).
			WithField("expected_days", stage.ExpectedDays).
			Warn("stage is over its time budget")
		i.hub.Broadcast(wsmodels.ServerMessage{
			Time:   now.Format("02.01.2006 15:04:05"),
			Code:   wsmodels.CodeStageStale,
			Msg:    fmt.Sprintf("%v applicants in %q wait %.1f days on average, expected %v", stage.Count, string(stage.Stage), stage.AvgDays, stage.ExpectedDays),
			Status: string(stage.Stage),
		})
	}
}
