package pipeline

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"onboard-tools-backend/db"
	applicantstore "onboard-tools-backend/lib/applicant/store"
	"onboard-tools-backend/lib/smtp"
	connectionhub "onboard-tools-backend/lib/ws/hub/connection-hub"
	"onboard-tools-backend/models"
	applicantapimodels "onboard-tools-backend/models/api/applicant"
	dbmodels "onboard-tools-backend/models/db"
	wsmodels "onboard-tools-backend/models/ws"
)

// Provider is the sole writer of applicant status.
type Provider interface {
	Advance(managerName, id string, req applicantapimodels.TransitionRequest) error
	MoveBack(managerName, id string) error
	SetStatus(managerName, id string, req applicantapimodels.StatusRequest) error
	Decline(managerName, id string, req applicantapimodels.DeclineRequest) error
	Hold(managerName, id string) error
	Resume(managerName, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:  applicantstore.NewInstance(db.DB),
		mailer: smtp.Instance,
		hub:    connectionhub.Instance,
	}
}

type impl struct {
	store  applicantstore.Provider
	mailer smtp.Provider
	hub    connectionhub.Provider
}

func (i impl) Advance(managerName, id string, req applicantapimodels.TransitionRequest) error {
	return i.apply(managerName, id, func(rec dbmodels.Applicant, now time.Time) (TransitionPlan, error) {
		return PlanAdvance(rec, req, now)
	})
}

func (i impl) MoveBack(managerName, id string) error {
	return i.apply(managerName, id, PlanMoveBack)
}

func (i impl) SetStatus(managerName, id string, req applicantapimodels.StatusRequest) error {
	return i.apply(managerName, id, func(rec dbmodels.Applicant, now time.Time) (TransitionPlan, error) {
		return PlanSetStatus(rec, req, now)
	})
}

func (i impl) Decline(managerName, id string, req applicantapimodels.DeclineRequest) error {
	return i.apply(managerName, id, func(rec dbmodels.Applicant, now time.Time) (TransitionPlan, error) {
		return PlanDecline(rec, req, now)
	})
}

func (i impl) Hold(managerName, id string) error {
	return i.apply(managerName, id, PlanHold)
}

func (i impl) Resume(managerName, id string) error {
	return i.apply(managerName, id, PlanResume)
}

func (i impl) apply(managerName, id string, planFn func(rec dbmodels.Applicant, now time.Time) (TransitionPlan, error)) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrApplicantNotFound
	}
	now := time.Now()
	plan, err := planFn(*rec, now)
	if err != nil {
		return err
	}
	hist := dbmodels.ApplicantHistory{
		ManagerName: managerName,
		ActionType:  plan.Action,
		Changes:     plan.Changes,
	}
	err = i.store.UpdateWithHistory(id, plan.Updates, hist)
	if err != nil {
		return err
	}
	i.notify(*rec, plan, now)
	return nil
}

// notify runs after the transition is committed; failures here never undo it.
func (i impl) notify(rec dbmodels.Applicant, plan TransitionPlan, now time.Time) {
	i.hub.Broadcast(wsmodels.ServerMessage{
		Time:        now.Format("02.01.2006 15:04:05"),
		Code:        wsmodels.CodeStatusChanged,
		Msg:         plan.Changes.Description,
		ApplicantID: rec.ID,
		Status:      string(plan.NewStatus),
	})
	subject, message := invitationMail(rec, plan.NewStatus)
	if subject == "" {
		return
	}
	if err := i.mailer.SendEMail(rec.Email, message, subject); err != nil {
		log.WithError(err).
			WithField("applicant_id", rec.ID).
			Error("failed to send invitation email")
	}
}

func invitationMail(rec dbmodels.Applicant, status models.ApplicantStatus) (subject, message string) {
	switch status {
	case models.ApplicantStatusInvitedToInterview:
		return "Interview invitation",
			fmt.Sprintf("Hello %s, you are invited to an interview for the %s position. The manager will contact you to arrange a time.", rec.Name, rec.JobTitle)
	case models.ApplicantStatusInvitedToTraining:
		return "Training invitation",
			fmt.Sprintf("Hello %s, you are invited to the onboarding training for the %s position.", rec.Name, rec.JobTitle)
	}
	return "", ""
}
