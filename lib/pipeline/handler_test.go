package pipeline

import (
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"onboard-tools-backend/models"
	applicantapimodels "onboard-tools-backend/models/api/applicant"
	dbmodels "onboard-tools-backend/models/db"
	wsmodels "onboard-tools-backend/models/ws"
)

type stubApplicantStore struct {
	rec         *dbmodels.Applicant
	updateCalls int
	lastUpdates map[string]interface{}
	lastHistory dbmodels.ApplicantHistory
}

func (s *stubApplicantStore) Create(rec dbmodels.Applicant) (string, error) { return rec.ID, nil }

func (s *stubApplicantStore) CreateBatch(list []dbmodels.Applicant) error { return nil }

func (s *stubApplicantStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (s *stubApplicantStore) UpdateWithHistory(id string, updMap map[string]interface{}, hist dbmodels.ApplicantHistory) error {
	s.updateCalls++
	s.lastUpdates = updMap
	s.lastHistory = hist
	return nil
}

func (s *stubApplicantStore) GetByID(id string) (*dbmodels.Applicant, error) { return s.rec, nil }

func (s *stubApplicantStore) List(filter applicantapimodels.ApplicantFilter) ([]dbmodels.Applicant, int64, error) {
	return nil, 0, nil
}

func (s *stubApplicantStore) Snapshot(filter applicantapimodels.ApplicantFilter) ([]dbmodels.Applicant, error) {
	return nil, nil
}

func (s *stubApplicantStore) Count() (int64, error) { return 0, nil }

type stubMailer struct {
	sent int
}

func (s *stubMailer) SendEMail(to, message, subject string) error {
	s.sent++
	return nil
}

type stubHub struct {
	events []wsmodels.ServerMessage
}

func (s *stubHub) AddClient(conn *websocket.Conn) string { return "" }

func (s *stubHub) DeleteClient(clientID string) {}

func (s *stubHub) Broadcast(msg wsmodels.ServerMessage) {
	s.events = append(s.events, msg)
}

func TestHandlerUnknownApplicant(t *testing.T) {
	newHandler := func() (impl, *stubApplicantStore, *stubHub) {
		store := &stubApplicantStore{} // GetByID finds nothing
		hub := &stubHub{}
		return impl{store: store, mailer: &stubMailer{}, hub: hub}, store, hub
	}

	t.Run(`set status with an unknown id returns not found and writes nothing`, func(t *testing.T) {
		h, store, hub := newHandler()
		err := h.SetStatus("manager", "no-such-id", applicantapimodels.StatusRequest{
			Status: models.ApplicantStatusInvitedToInterview,
		})
		require.True(t, errors.Is(err, models.ErrApplicantNotFound))
		require.Equal(t, 0, store.updateCalls)
		require.Empty(t, hub.events)
	})

	t.Run(`every operation rejects an unknown id before writing`, func(t *testing.T) {
		h, store, hub := newHandler()
		ops := map[string]func() error{
			"advance": func() error {
				return h.Advance("manager", "no-such-id", applicantapimodels.TransitionRequest{})
			},
			"move_back": func() error { return h.MoveBack("manager", "no-such-id") },
			"decline": func() error {
				return h.Decline("manager", "no-such-id", applicantapimodels.DeclineRequest{Reason: "gone"})
			},
			"hold":   func() error { return h.Hold("manager", "no-such-id") },
			"resume": func() error { return h.Resume("manager", "no-such-id") },
		}
		for name, op := range ops {
			require.True(t, errors.Is(op(), models.ErrApplicantNotFound), name)
		}
		require.Equal(t, 0, store.updateCalls)
		require.Empty(t, hub.events)
	})
}

func TestHandlerAppliesPlanAndNotifies(t *testing.T) {
	rec := testApplicant(models.ApplicantStatusApplied)
	store := &stubApplicantStore{rec: &rec}
	mailer := &stubMailer{}
	hub := &stubHub{}
	h := impl{store: store, mailer: mailer, hub: hub}

	err := h.Advance("manager", rec.ID, applicantapimodels.TransitionRequest{})
	require.NoError(t, err)

	require.Equal(t, 1, store.updateCalls)
	require.Equal(t, models.ApplicantStatusInvitedToInterview, store.lastUpdates["status"])
	require.Equal(t, dbmodels.HistoryTypeStageChange, store.lastHistory.ActionType)

	require.Len(t, hub.events, 1)
	require.Equal(t, wsmodels.CodeStatusChanged, hub.events[0].Code)
	require.Equal(t, rec.ID, hub.events[0].ApplicantID)
	require.Equal(t, string(models.ApplicantStatusInvitedToInterview), hub.events[0].Status)

	// entering Invited to Interview sends the invitation mail
	require.Equal(t, 1, mailer.sent)
}

func TestHandlerPlanFailureWritesNothing(t *testing.T) {
	rec := testApplicant(models.ApplicantStatusGoLive)
	store := &stubApplicantStore{rec: &rec}
	hub := &stubHub{}
	h := impl{store: store, mailer: &stubMailer{}, hub: hub}

	err := h.Advance("manager", rec.ID, applicantapimodels.TransitionRequest{})
	require.True(t, errors.Is(err, models.ErrInvalidTransition))
	require.Equal(t, 0, store.updateCalls)
	require.Empty(t, hub.events)
}
