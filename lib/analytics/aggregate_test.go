package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"onboard-tools-backend/models"
	analyticsapimodels "onboard-tools-backend/models/api/analytics"
	dbmodels "onboard-tools-backend/models/db"
)

func snapshotApplicant(status models.ApplicantStatus, applied, lastChange time.Time) dbmodels.Applicant {
	return dbmodels.Applicant{
		Status:               status,
		AppliedDate:          applied,
		LastStatusChangeDate: lastChange,
	}
}

func TestFunnel(t *testing.T) {
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run(`counts are monotonically non-increasing`, func(t *testing.T) {
		list := []dbmodels.Applicant{
			snapshotApplicant(models.ApplicantStatusApplied, day, day),
			snapshotApplicant(models.ApplicantStatusApplied, day, day),
			snapshotApplicant(models.ApplicantStatusInterviewScheduled, day, day),
			snapshotApplicant(models.ApplicantStatusInTraining, day, day),
			snapshotApplicant(models.ApplicantStatusGoLive, day, day),
			snapshotApplicant(models.ApplicantStatusDeclined, day, day),
			snapshotApplicant(models.ApplicantStatusUnderReview, day, day),
		}
		data := Funnel(list)
		require.Len(t, data.Stages, len(models.PipelineStages))
		// side states are excluded entirely
		require.Equal(t, 5, data.Stages[0].Reached)
		for i := 1; i < len(data.Stages); i++ {
			require.LessOrEqual(t, data.Stages[i].Reached, data.Stages[i-1].Reached)
		}
		require.Equal(t, 1, data.Stages[len(data.Stages)-1].Reached)
	})

	t.Run(`empty input keeps the stage list with zero counts`, func(t *testing.T) {
		data := Funnel(nil)
		require.Len(t, data.Stages, len(models.PipelineStages))
		for _, stage := range data.Stages {
			require.Equal(t, 0, stage.Reached)
		}
	})
}

func TestGeoRollup(t *testing.T) {
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run(`groups by country sorted by total`, func(t *testing.T) {
		list := []dbmodels.Applicant{}
		for i := 0; i < 5; i++ {
			rec := snapshotApplicant(models.ApplicantStatusApplied, day, day)
			rec.Country = "Canada"
			rec.City = "Toronto"
			list = append(list, rec)
		}
		for i := 0; i < 3; i++ {
			rec := snapshotApplicant(models.ApplicantStatusInTraining, day, day)
			rec.Country = "Mexico"
			rec.City = "Mexico City"
			list = append(list, rec)
		}
		data := GeoRollup(list)
		require.Len(t, data.Countries, 2)
		require.Equal(t, "Canada", data.Countries[0].Name)
		require.Equal(t, 5, data.Countries[0].Total)
		require.Equal(t, models.ApplicantStatusApplied, data.Countries[0].DominantStatus)
		require.Equal(t, "Mexico", data.Countries[1].Name)
		require.Equal(t, models.ApplicantStatusInTraining, data.Countries[1].DominantStatus)
		require.Len(t, data.Cities, 2)
		require.Equal(t, "Toronto", data.Cities[0].Name)
	})

	t.Run(`dominant status ties resolve to pipeline order`, func(t *testing.T) {
		list := []dbmodels.Applicant{}
		for _, status := range []models.ApplicantStatus{models.ApplicantStatusGoLive, models.ApplicantStatusApplied} {
			rec := snapshotApplicant(status, day, day)
			rec.Country = "USA"
			list = append(list, rec)
		}
		data := GeoRollup(list)
		require.Len(t, data.Countries, 1)
		require.Equal(t, models.ApplicantStatusApplied, data.Countries[0].DominantStatus)
	})

	t.Run(`records without location are skipped`, func(t *testing.T) {
		data := GeoRollup([]dbmodels.Applicant{snapshotApplicant(models.ApplicantStatusApplied, day, day)})
		require.Empty(t, data.Countries)
		require.Empty(t, data.Cities)
	})
}

func TestTrend(t *testing.T) {
	t.Run(`daily buckets come out ascending`, func(t *testing.T) {
		list := []dbmodels.Applicant{
			snapshotApplicant(models.ApplicantStatusApplied, time.Date(2026, 8, 3, 15, 0, 0, 0, time.UTC), time.Time{}),
			snapshotApplicant(models.ApplicantStatusApplied, time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC), time.Time{}),
			snapshotApplicant(models.ApplicantStatusApplied, time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC), time.Time{}),
		}
		data := Trend(list, "")
		require.Equal(t, analyticsapimodels.TrendIntervalDay, data.Interval)
		require.Len(t, data.Points, 2)
		require.Equal(t, "2026-08-01", data.Points[0].Date)
		require.Equal(t, 2, data.Points[0].Count)
		require.Equal(t, "2026-08-03", data.Points[1].Date)
	})

	t.Run(`weekly buckets start on Monday`, func(t *testing.T) {
		// 2026-08-05 is a Wednesday, 2026-08-03 the Monday of that week
		list := []dbmodels.Applicant{
			snapshotApplicant(models.ApplicantStatusApplied, time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC), time.Time{}),
			snapshotApplicant(models.ApplicantStatusApplied, time.Date(2026, 8, 7, 12, 0, 0, 0, time.UTC), time.Time{}),
		}
		data := Trend(list, analyticsapimodels.TrendIntervalWeek)
		require.Len(t, data.Points, 1)
		require.Equal(t, "2026-08-03", data.Points[0].Date)
		require.Equal(t, 2, data.Points[0].Count)
	})
}

func TestConversion(t *testing.T) {
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run(`declined applicants leave the denominator`, func(t *testing.T) {
		list := []dbmodels.Applicant{}
		for i := 0; i < 2; i++ {
			list = append(list, snapshotApplicant(models.ApplicantStatusGoLive, day, day))
		}
		for i := 0; i < 2; i++ {
			list = append(list, snapshotApplicant(models.ApplicantStatusDeclined, day, day))
		}
		for i := 0; i < 6; i++ {
			list = append(list, snapshotApplicant(models.ApplicantStatusApplied, day, day))
		}
		data := Conversion(list)
		require.Equal(t, 10, data.Total)
		require.Equal(t, 2, data.GoLive)
		require.Equal(t, 2, data.Declined)
		// 2 of 8 still in play
		require.Equal(t, 25, data.RatePercent)
	})

	t.Run(`zero denominator yields zero percent`, func(t *testing.T) {
		data := Conversion([]dbmodels.Applicant{snapshotApplicant(models.ApplicantStatusDeclined, day, day)})
		require.Equal(t, 0, data.RatePercent)
	})
}

func TestTimeToHire(t *testing.T) {
	applied := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	t.Run(`twelve days lands in the 8-14 bucket`, func(t *testing.T) {
		list := []dbmodels.Applicant{
			snapshotApplicant(models.ApplicantStatusGoLive, applied, applied.AddDate(0, 0, 12)),
			// non-hires never count
			snapshotApplicant(models.ApplicantStatusInTraining, applied, applied.AddDate(0, 0, 40)),
		}
		data := TimeToHire(list)
		require.Equal(t, 1, data.Hires)
		require.Len(t, data.Buckets, 5)
		require.Equal(t, "8-14", data.Buckets[1].Label)
		require.Equal(t, 1, data.Buckets[1].Count)
		require.Equal(t, float64(12), data.MedianDays)
	})

	t.Run(`quartiles use the median-of-halves method`, func(t *testing.T) {
		list := []dbmodels.Applicant{}
		for _, days := range []int{2, 6, 10, 20, 35} {
			list = append(list, snapshotApplicant(models.ApplicantStatusGoLive, applied, applied.AddDate(0, 0, days)))
		}
		data := TimeToHire(list)
		require.Equal(t, 5, data.Hires)
		require.Equal(t, float64(10), data.MedianDays)
		require.Equal(t, float64(4), data.Q1Days)
		require.Equal(t, 27.5, data.Q3Days)
	})

	t.Run(`no hires yields zero statistics`, func(t *testing.T) {
		data := TimeToHire(nil)
		require.Equal(t, 0, data.Hires)
		require.Equal(t, float64(0), data.MedianDays)
	})
}

func TestHealth(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	t.Run(`stages classify against their budget`, func(t *testing.T) {
		list := []dbmodels.Applicant{
			// Applied budget is 3 days; 10 days is over 2x
			snapshotApplicant(models.ApplicantStatusApplied, now.AddDate(0, 0, -10), now.AddDate(0, 0, -10)),
			// In Training budget is 14 days; 5 days is fine
			snapshotApplicant(models.ApplicantStatusInTraining, now.AddDate(0, 0, -20), now.AddDate(0, 0, -5)),
		}
		data := Health(list, now)
		byStage := map[models.ApplicantStatus]analyticsapimodels.StageHealth{}
		for _, stage := range data.Stages {
			byStage[stage.Stage] = stage
		}
		require.Equal(t, models.StageHealthCritical, byStage[models.ApplicantStatusApplied].Health)
		require.Equal(t, models.StageHealthGood, byStage[models.ApplicantStatusInTraining].Health)
		// Go Live is not a waiting stage
		_, hasGoLive := byStage[models.ApplicantStatusGoLive]
		require.False(t, hasGoLive)
	})

	t.Run(`empty stages report good`, func(t *testing.T) {
		data := Health(nil, now)
		for _, stage := range data.Stages {
			require.Equal(t, models.StageHealthGood, stage.Health)
			require.Equal(t, 0, stage.Count)
		}
	})
}

func TestRatings(t *testing.T) {
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run(`ratings bucket to the nearest star`, func(t *testing.T) {
		list := []dbmodels.Applicant{}
		for _, rating := range []float64{4.6, 4.4, 3.0, 0} {
			rec := snapshotApplicant(models.ApplicantStatusApplied, day, day)
			rec.Rating = rating
			list = append(list, rec)
		}
		data := Ratings(list)
		require.Equal(t, 3, data.Rated)
		require.InDelta(t, 4.0, data.Average, 0.001)
		require.Equal(t, 1, data.Buckets[2].Count) // 3 stars
		require.Equal(t, 1, data.Buckets[3].Count) // 4 stars (4.4 rounds down)
		require.Equal(t, 1, data.Buckets[4].Count) // 5 stars (4.6 rounds up)
	})
}

func TestTopSkills(t *testing.T) {
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run(`counts sort descending with a name tie-break`, func(t *testing.T) {
		list := []dbmodels.Applicant{}
		for _, skills := range [][]string{
			{"English", "CRM"},
			{"English"},
			{"Spanish"},
		} {
			rec := snapshotApplicant(models.ApplicantStatusApplied, day, day)
			rec.Skills = skills
			list = append(list, rec)
		}
		data := TopSkills(list, 2)
		require.Len(t, data.Top, 2)
		require.Equal(t, "English", data.Top[0].Skill)
		require.Equal(t, 2, data.Top[0].Count)
		require.Equal(t, "CRM", data.Top[1].Skill)
	})
}
