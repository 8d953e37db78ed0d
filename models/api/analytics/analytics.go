package analyticsapimodels

import (
	"onboard-tools-backend/models"
	applicantapimodels "onboard-tools-backend/models/api/applicant"

	"github.com/pkg/errors"
)

const (
	TrendIntervalDay  = "day"
	TrendIntervalWeek = "week"
)

// AnalyticsFilter narrows the snapshot before aggregation.
type AnalyticsFilter struct {
	Status      models.ApplicantStatus `json:"status"`       // current stage
	Country     string                 `json:"country"`      // exact country
	AppliedFrom string                 `json:"applied_from"` // YYYY-MM-DD inclusive
	AppliedTo   string                 `json:"applied_to"`   // YYYY-MM-DD inclusive
}

func (f AnalyticsFilter) Validate() error {
	return f.ToApplicantFilter().Validate()
}

func (f AnalyticsFilter) ToApplicantFilter() applicantapimodels.ApplicantFilter {
	return applicantapimodels.ApplicantFilter{
		Status:      f.Status,
		Country:     f.Country,
		AppliedFrom: f.AppliedFrom,
		AppliedTo:   f.AppliedTo,
	}
}

type TrendFilter struct {
	AnalyticsFilter
	Interval string `json:"interval"` // day|week, default day
}

func (f TrendFilter) Validate() error {
	if f.Interval != "" && f.Interval != TrendIntervalDay && f.Interval != TrendIntervalWeek {
		return errors.Errorf("unknown trend interval: %s", f.Interval)
	}
	return f.AnalyticsFilter.Validate()
}

type FunnelStage struct {
	Stage   models.ApplicantStatus `json:"stage"`
	Reached int                    `json:"reached"` // current stage index at or beyond this stage
}

type FunnelData struct {
	Stages []FunnelStage `json:"stages"`
}

type GeoBucket struct {
	Name           string                 `json:"name"`
	Total          int                    `json:"total"`
	ByStatus       map[string]int         `json:"by_status"`
	DominantStatus models.ApplicantStatus `json:"dominant_status"`
}

type GeoData struct {
	Countries []GeoBucket `json:"countries"`
	Cities    []GeoBucket `json:"cities"`
}

type TrendPoint struct {
	Date  string `json:"date"` // day or ISO week start (Monday), YYYY-MM-DD
	Count int    `json:"count"`
}

type TrendData struct {
	Interval string       `json:"interval"`
	Points   []TrendPoint `json:"points"`
}

type ConversionData struct {
	Total       int `json:"total"`
	GoLive      int `json:"go_live"`
	Declined    int `json:"declined"`
	RatePercent int `json:"rate_percent"` // round(go_live / (total - declined) * 100)
}

type TimeToHireBucket struct {
	Label string `json:"label"` // 0-7, 8-14, 15-21, 22-30, 30+
	Count int    `json:"count"`
}

type TimeToHireData struct {
	Hires      int                `json:"hires"`
	Buckets    []TimeToHireBucket `json:"buckets"`
	MedianDays float64            `json:"median_days"`
	Q1Days     float64            `json:"q1_days"`
	Q3Days     float64            `json:"q3_days"`
}

type StageHealth struct {
	Stage        models.ApplicantStatus  `json:"stage"`
	Count        int                     `json:"count"`
	AvgDays      float64                 `json:"avg_days"` // since last status change
	ExpectedDays int                     `json:"expected_days"`
	Health       models.StageHealthLevel `json:"health"`
}

type HealthData struct {
	Stages []StageHealth `json:"stages"`
}

type RatingBucket struct {
	Stars int `json:"stars"` // whole-star bucket 1..5
	Count int `json:"count"`
}

type RatingData struct {
	Rated   int            `json:"rated"` // applicants with a rating set
	Average float64        `json:"average"`
	Buckets []RatingBucket `json:"buckets"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type SkillsData struct {
	Top []SkillCount `json:"top"`
}
