package connectionhub

import (
	"sync"

	wsmodels "onboard-tools-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Provider interface {
	AddClient(conn *websocket.Conn) (clientID string)
	DeleteClient(clientID string)
	Broadcast(msg wsmodels.ServerMessage)
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
	}
}

// impl fans transition events out to every connected board client.
type impl struct {
	mu      sync.Mutex
	clients map[string]clientSession
}

func (i *impl) AddClient(conn *websocket.Conn) string {
	clientID := uuid.NewString()
	i.mu.Lock()
	defer i.mu.Unlock()
	i.clients[clientID] = newSession(conn)
	return clientID
}

func (i *impl) DeleteClient(clientID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[clientID]
	if !ok {
		return
	}
	delete(i.clients, clientID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) Broadcast(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, sess := range i.clients {
		select {
		case sess.sendCh <- msg:
		default: // slow client, drop the event rather than block the pipeline
		}
	}
}
