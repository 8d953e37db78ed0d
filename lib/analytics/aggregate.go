package analytics

import (
	"sort"
	"time"

	"onboard-tools-backend/lib/utils/helpers"
	"onboard-tools-backend/models"
	analyticsapimodels "onboard-tools-backend/models/api/analytics"
	dbmodels "onboard-tools-backend/models/db"
)

// The aggregations below are pure functions over a loaded snapshot; they never
// error and return zero-valued results for empty input.

// Funnel counts applicants whose current pipeline position is at or beyond
// each stage. Side states (Declined, Under Review) are off the ordered list
// and excluded, which makes the counts monotonically non-increasing.
func Funnel(list []dbmodels.Applicant) analyticsapimodels.FunnelData {
	counts := make([]int, len(models.PipelineStages))
	for _, rec := range list {
		idx, ok := rec.Status.PipelineIndex()
		if !ok {
			continue
		}
		for stage := 0; stage <= idx; stage++ {
			counts[stage]++
		}
	}
	stages := make([]analyticsapimodels.FunnelStage, 0, len(models.PipelineStages))
	for idx, stage := range models.PipelineStages {
		stages = append(stages, analyticsapimodels.FunnelStage{
			Stage:   stage,
			Reached: counts[idx],
		})
	}
	return analyticsapimodels.FunnelData{Stages: stages}
}

// GeoRollup groups by country and by city with a per-status breakdown.
// Dominant status is the one with the highest count; ties resolve to the
// status declared first in models.AllStatuses.
func GeoRollup(list []dbmodels.Applicant) analyticsapimodels.GeoData {
	return analyticsapimodels.GeoData{
		Countries: geoBuckets(list, func(rec dbmodels.Applicant) string { return rec.Country }),
		Cities:    geoBuckets(list, func(rec dbmodels.Applicant) string { return rec.City }),
	}
}

func geoBuckets(list []dbmodels.Applicant, keyFn func(rec dbmodels.Applicant) string) []analyticsapimodels.GeoBucket {
	byKey := map[string]map[string]int{}
	for _, rec := range list {
		key := keyFn(rec)
		if key == "" {
			continue
		}
		if byKey[key] == nil {
			byKey[key] = map[string]int{}
		}
		byKey[key][string(rec.Status)]++
	}
	result := make([]analyticsapimodels.GeoBucket, 0, len(byKey))
	for key, byStatus := range byKey {
		total := 0
		for _, count := range byStatus {
			total += count
		}
		result = append(result, analyticsapimodels.GeoBucket{
			Name:           key,
			Total:          total,
			ByStatus:       byStatus,
			DominantStatus: dominantStatus(byStatus),
		})
	}
	sort.Slice(result, func(a, b int) bool {
		if result[a].Total != result[b].Total {
			return result[a].Total > result[b].Total
		}
		return result[a].Name < result[b].Name
	})
	return result
}

func dominantStatus(byStatus map[string]int) models.ApplicantStatus {
	best := models.ApplicantStatus("")
	bestCount := 0
	for _, status := range models.AllStatuses {
		if count := byStatus[string(status)]; count > bestCount {
			best = status
			bestCount = count
		}
	}
	return best
}

// Trend buckets applications by day or ISO week (Monday start) over the
// applied date, ascending.
func Trend(list []dbmodels.Applicant, interval string) analyticsapimodels.TrendData {
	if interval == "" {
		interval = analyticsapimodels.TrendIntervalDay
	}
	byBucket := map[time.Time]int{}
	for _, rec := range list {
		bucket := helpers.DayStart(rec.AppliedDate)
		if interval == analyticsapimodels.TrendIntervalWeek {
			bucket = helpers.WeekStart(rec.AppliedDate)
		}
		byBucket[bucket]++
	}
	keys := make([]time.Time, 0, len(byBucket))
	for key := range byBucket {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a].Before(keys[b]) })
	points := make([]analyticsapimodels.TrendPoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, analyticsapimodels.TrendPoint{
			Date:  key.Format("2006-01-02"),
			Count: byBucket[key],
		})
	}
	return analyticsapimodels.TrendData{Interval: interval, Points: points}
}

// Conversion is go-live over everyone still in play, as a rounded percent,
// 0 when nobody is in play.
func Conversion(list []dbmodels.Applicant) analyticsapimodels.ConversionData {
	data := analyticsapimodels.ConversionData{Total: len(list)}
	for _, rec := range list {
		switch rec.Status {
		case models.ApplicantStatusGoLive:
			data.GoLive++
		case models.ApplicantStatusDeclined:
			data.Declined++
		}
	}
	data.RatePercent = helpers.RoundPercent(data.GoLive, data.Total-data.Declined)
	return data
}

var timeToHireEdges = []struct {
	label string
	max   int // inclusive, -1 is unbounded
}{
	{"0-7", 7},
	{"8-14", 14},
	{"15-21", 21},
	{"22-30", 30},
	{"30+", -1},
}

// TimeToHire is the whole-day span from application to Go Live, as a fixed
// histogram plus median/quartile statistics.
func TimeToHire(list []dbmodels.Applicant) analyticsapimodels.TimeToHireData {
	days := []int{}
	for _, rec := range list {
		if rec.Status != models.ApplicantStatusGoLive {
			continue
		}
		days = append(days, helpers.CalendarDaysBetween(rec.AppliedDate, rec.LastStatusChangeDate))
	}
	buckets := make([]analyticsapimodels.TimeToHireBucket, len(timeToHireEdges))
	for idx, edge := range timeToHireEdges {
		buckets[idx] = analyticsapimodels.TimeToHireBucket{Label: edge.label}
	}
	for _, d := range days {
		for idx, edge := range timeToHireEdges {
			if edge.max < 0 || d <= edge.max {
				buckets[idx].Count++
				break
			}
		}
	}
	sort.Ints(days)
	q1, median, q3 := quartiles(days)
	return analyticsapimodels.TimeToHireData{
		Hires:      len(days),
		Buckets:    buckets,
		MedianDays: median,
		Q1Days:     q1,
		Q3Days:     q3,
	}
}

func median(sorted []int) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

// quartiles uses the median-of-halves method, the middle element excluded
// from both halves on odd input.
func quartiles(sorted []int) (q1, med, q3 float64) {
	n := len(sorted)
	if n == 0 {
		return 0, 0, 0
	}
	med = median(sorted)
	q1 = median(sorted[:n/2])
	if n%2 == 1 {
		q3 = median(sorted[n/2+1:])
	} else {
		q3 = median(sorted[n/2:])
	}
	return q1, med, q3
}

// Health classifies the waiting pipeline stages by the average days records
// have sat in them against the per-stage budget.
func Health(list []dbmodels.Applicant, now time.Time) analyticsapimodels.HealthData {
	stages := []analyticsapimodels.StageHealth{}
	for _, stage := range models.PipelineStages {
		if stage == models.ApplicantStatusGoLive {
			continue
		}
		count := 0
		totalDays := 0
		for _, rec := range list {
			if rec.Status != stage {
				continue
			}
			count++
			totalDays += rec.StageAgeDays(now)
		}
		expected := models.StageExpectedDays[stage]
		health := analyticsapimodels.StageHealth{
			Stage:        stage,
			Count:        count,
			ExpectedDays: expected,
			Health:       models.StageHealthGood,
		}
		if count > 0 {
			health.AvgDays = float64(totalDays) / float64(count)
			switch {
			case health.AvgDays > 2*float64(expected):
				health.Health = models.StageHealthCritical
			case health.AvgDays > 1.5*float64(expected):
				health.Health = models.StageHealthWarning
			}
		}
		stages = append(stages, health)
	}
	return analyticsapimodels.HealthData{Stages: stages}
}

// Ratings buckets rated applicants into whole stars (nearest star).
func Ratings(list []dbmodels.Applicant) analyticsapimodels.RatingData {
	data := analyticsapimodels.RatingData{}
	counts := [5]int{}
	sum := 0.0
	for _, rec := range list {
		if rec.Rating < 1 {
			continue
		}
		data.Rated++
		sum += rec.Rating
		stars := int(rec.Rating + 0.5)
		if stars > 5 {
			stars = 5
		}
		counts[stars-1]++
	}
	if data.Rated > 0 {
		data.Average = sum / float64(data.Rated)
	}
	for stars := 1; stars <= 5; stars++ {
		data.Buckets = append(data.Buckets, analyticsapimodels.RatingBucket{
			Stars: stars,
			Count: counts[stars-1],
		})
	}
	return data
}

// TopSkills counts applicants per skill, descending, capped at limit.
func TopSkills(list []dbmodels.Applicant, limit int) analyticsapimodels.SkillsData {
	bySkill := map[string]int{}
	for _, rec := range list {
		for _, skill := range rec.Skills {
			bySkill[skill]++
		}
	}
	top := make([]analyticsapimodels.SkillCount, 0, len(bySkill))
	for skill, count := range bySkill {
		top = append(top, analyticsapimodels.SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(top, func(a, b int) bool {
		if top[a].Count != top[b].Count {
			return top[a].Count > top[b].Count
		}
		return top[a].Skill < top[b].Skill
	})
	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	return analyticsapimodels.SkillsData{Top: top}
}
