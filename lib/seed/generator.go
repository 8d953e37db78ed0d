package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"onboard-tools-backend/models"
	dbmodels "onboard-tools-backend/models/db"
)

// Demo dataset generator; used to populate an empty board on first start.

var statusWeights = []struct {
	status models.ApplicantStatus
	weight int
}{
	{models.ApplicantStatusApplied, 30},
	{models.ApplicantStatusInvitedToInterview, 15},
	{models.ApplicantStatusInterviewScheduled, 12},
	{models.ApplicantStatusInvitedToTraining, 8},
	{models.ApplicantStatusInTraining, 10},
	{models.ApplicantStatusGoLive, 10},
	{models.ApplicantStatusDeclined, 10},
	{models.ApplicantStatusUnderReview, 5},
}

var firstNames = []string{"Alex", "Maria", "James", "Sofia", "Daniel", "Emma", "Lucas", "Olivia", "Diego", "Ava", "Mateo", "Isabella", "Ethan", "Camila", "Noah", "Valentina", "Liam", "Mia", "Carlos", "Grace"}

var lastNames = []string{"Smith", "Garcia", "Johnson", "Martinez", "Brown", "Rodriguez", "Wilson", "Lopez", "Taylor", "Hernandez", "Anderson", "Gonzalez", "Thomas", "Perez", "Moore", "Sanchez", "Clark", "Ramirez", "Lewis", "Torres"}

var jobTitles = []string{"Customer Support Agent", "Sales Representative", "Content Moderator", "Account Manager", "Technical Support Specialist"}

var experiences = []string{"No experience", "Less than 1 year", "1-3 years", "3-5 years", "5+ years"}

var skillPool = []string{"English", "Spanish", "French", "CRM", "Cold calling", "Live chat", "Ticketing", "Upselling", "Conflict resolution", "Typing 60wpm"}

var locations = []struct {
	city    string
	region  string
	country string
}{
	{"Toronto", "Ontario", "Canada"},
	{"Vancouver", "British Columbia", "Canada"},
	{"Montreal", "Quebec", "Canada"},
	{"Mexico City", "CDMX", "Mexico"},
	{"Guadalajara", "Jalisco", "Mexico"},
	{"Monterrey", "Nuevo Leon", "Mexico"},
	{"Austin", "Texas", "USA"},
	{"Denver", "Colorado", "USA"},
	{"Seattle", "Washington", "USA"},
}

var trainingSessions = []string{"Morning cohort", "Afternoon cohort", "Evening cohort"}

// Generate builds count demo applicants applied within the last 90 days.
// Every record satisfies the board invariants: the last status change is
// never before the application, stage extras are present where the stage
// requires them, and Under Review keeps the stage it was pulled from.
func Generate(count int, now time.Time, rnd *rand.Rand) []dbmodels.Applicant {
	list := make([]dbmodels.Applicant, 0, count)
	for n := 0; n < count; n++ {
		first := firstNames[rnd.Intn(len(firstNames))]
		last := lastNames[rnd.Intn(len(lastNames))]
		loc := locations[rnd.Intn(len(locations))]
		status := pickStatus(rnd)

		applied := now.AddDate(0, 0, -rnd.Intn(90)).Add(-time.Duration(rnd.Intn(12)) * time.Hour)
		maxShift := int(now.Sub(applied).Hours())
		lastChange := applied
		if maxShift > 0 && status != models.ApplicantStatusApplied {
			lastChange = applied.Add(time.Duration(rnd.Intn(maxShift)) * time.Hour)
		}

		rec := dbmodels.Applicant{
			BaseModel:            dbmodels.BaseModel{ID: uuid.NewString()},
			Name:                 first + " " + last,
			Email:                fmt.Sprintf("%v.%v%v@example.com", strings.ToLower(first), strings.ToLower(last), n),
			Phone:                fmt.Sprintf("+1555%07d", rnd.Intn(10000000)),
			JobTitle:             jobTitles[rnd.Intn(len(jobTitles))],
			Experience:           experiences[rnd.Intn(len(experiences))],
			Status:               status,
			AppliedDate:          applied,
			LastStatusChangeDate: lastChange,
			City:                 loc.city,
			Region:               loc.region,
			Country:              loc.country,
			Skills:               pickSkills(rnd),
		}
		if rnd.Intn(100) < 60 {
			rec.Rating = 1 + rnd.Float64()*4
		}
		applyStageDetails(&rec, rnd)
		list = append(list, rec)
	}
	return list
}

func pickStatus(rnd *rand.Rand) models.ApplicantStatus {
	total := 0
	for _, sw := range statusWeights {
		total += sw.weight
	}
	pick := rnd.Intn(total)
	for _, sw := range statusWeights {
		if pick < sw.weight {
			return sw.status
		}
		pick -= sw.weight
	}
	return models.ApplicantStatusApplied
}

func pickSkills(rnd *rand.Rand) pq.StringArray {
	n := 1 + rnd.Intn(4)
	picked := map[int]bool{}
	skills := pq.StringArray{}
	for len(skills) < n {
		idx := rnd.Intn(len(skillPool))
		if picked[idx] {
			continue
		}
		picked[idx] = true
		skills = append(skills, skillPool[idx])
	}
	return skills
}

func applyStageDetails(rec *dbmodels.Applicant, rnd *rand.Rand) {
	effective := rec.Status
	if rec.Status == models.ApplicantStatusUnderReview {
		prev := models.PipelineStages[rnd.Intn(len(models.PipelineStages)-1)]
		rec.PreviousStatus = prev
		effective = prev
	}
	idx, ok := effective.PipelineIndex()
	if !ok {
		return
	}
	if scheduledIdx, _ := models.ApplicantStatusInterviewScheduled.PipelineIndex(); idx >= scheduledIdx {
		slot := rec.LastStatusChangeDate.Add(time.Duration(24+rnd.Intn(72)) * time.Hour)
		rec.InterviewTime = slot.Format("2006-01-02 15:04")
	}
	if trainingIdx, _ := models.ApplicantStatusInvitedToTraining.PipelineIndex(); idx >= trainingIdx {
		rec.TrainingSession = trainingSessions[rnd.Intn(len(trainingSessions))]
	}
}
