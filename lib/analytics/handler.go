package analytics

import (
	"bytes"
	"time"

	"onboard-tools-backend/lib/applicant"
	xlsexport "onboard-tools-backend/lib/export/xls"
	initchecker "onboard-tools-backend/lib/utils/init-checker"
	analyticsapimodels "onboard-tools-backend/models/api/analytics"
	dbmodels "onboard-tools-backend/models/db"
)

const topSkillsLimit = 10

type Provider interface {
	Funnel(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.FunnelData, error)
	Geo(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.GeoData, error)
	Trend(filter analyticsapimodels.TrendFilter) (analyticsapimodels.TrendData, error)
	Conversion(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.ConversionData, error)
	TimeToHire(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.TimeToHireData, error)
	Health(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.HealthData, error)
	Ratings(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.RatingData, error)
	Skills(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.SkillsData, error)
	FunnelExportToXls(filter analyticsapimodels.AnalyticsFilter) (*bytes.Buffer, error)
	ApplicantsExportToXls(filter analyticsapimodels.AnalyticsFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		applicantProvider: applicant.Instance,
	}
	initchecker.CheckInit(
		"applicantProvider", instance.applicantProvider,
	)
	Instance = instance
}

type impl struct {
	applicantProvider applicant.Provider
}

func (i impl) snapshot(filter analyticsapimodels.AnalyticsFilter) ([]dbmodels.Applicant, error) {
	return i.applicantProvider.Snapshot(filter.ToApplicantFilter())
}

func (i impl) Funnel(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.FunnelData, error) {
	list, err := i.snapshot(filter)
	if err != nil {
		return analyticsapimodels.FunnelData{}, err
	}
	return Funnel(list), nil
}

func (i impl) Geo(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.GeoData, error) {
	list, err := i.snapshot(filter)
	if err != nil {
		return analyticsapimodels.GeoData{}, err
	}
	return GeoRollup(list), nil
}

func (i impl) Trend(filter analyticsapimodels.TrendFilter) (analyticsapimodels.TrendData, error) {
	list, err := i.snapshot(filter.AnalyticsFilter)
	if err != nil {
		return analyticsapimodels.TrendData{}, err
	}
	return Trend(list, filter.Interval), nil
}

func (i impl) Conversion(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.ConversionData, error) {
	list, err := i.snapshot(filter)
	if err != nil {
		return analyticsapimodels.ConversionData{}, err
	}
	return Conversion(list), nil
}

func (i impl) TimeToHire(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.TimeToHireData, error) {
	list, err := i.snapshot(filter)
	if err != nil {
		return analyticsapimodels.TimeToHireData{}, err
	}
	return TimeToHire(list), nil
}

func (i impl) Health(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.HealthData, error) {
	list, err := i.snapshot(filter)
	if err != nil {
		return analyticsapimodels.HealthData{}, err
	}
	return Health(list, time.Now()), nil
}

func (i impl) Ratings(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.RatingData, error) {
	list, err := i.snapshot(filter)
	if err != nil {
		return analyticsapimodels.RatingData{}, err
	}
	return Ratings(list), nil
}

func (i impl) Skills(filter analyticsapimodels.AnalyticsFilter) (analyticsapimodels.SkillsData, error) {
	list, err := i.snapshot(filter)
	if err != nil {
		return analyticsapimodels.SkillsData{}, err
	}
	return TopSkills(list, topSkillsLimit), nil
}

func (i impl) FunnelExportToXls(filter analyticsapimodels.AnalyticsFilter) (*bytes.Buffer, error) {
	data, err := i.Funnel(filter)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportFunnel(data)
}

func (i impl) ApplicantsExportToXls(filter analyticsapimodels.AnalyticsFilter) (*bytes.Buffer, error) {
	list, err := i.snapshot(filter)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportApplicantList(list)
}
