package boardhub

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
	wsmodels "recruitment-backend/models/ws"
)

// Provider is the live-board hub: every viewer of a position's kanban
// board subscribes here and receives refetch hints after mutations.
// Delivery is best effort.
type Provider interface {
	Subscribe(positionID, connID string, conn *websocket.Conn)
	Unsubscribe(positionID, connID string)
	Broadcast(event wsmodels.BoardEvent)
}

var Instance Provider

func Init() {
	Instance = &impl{
		boards: map[string]map[string]clientSession{},
	}
}

type impl struct {
	mu     sync.RWMutex
	boards map[string]map[string]clientSession // positionID -> connID -> session
}

func (i *impl) Subscribe(positionID, connID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sessions, ok := i.boards[positionID]
	if !ok {
		sessions = map[string]clientSession{}
		i.boards[positionID] = sessions
	}
	if old, ok := sessions[connID]; ok {
		old.stop()
	}
	sessions[connID] = newSession(conn)
}

func (i *impl) Unsubscribe(positionID, connID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sessions, ok := i.boards[positionID]
	if !ok {
		return
	}
	sess, ok := sessions[connID]
	if !ok {
		return
	}
	delete(sessions, connID)
	if len(sessions) == 0 {
		delete(i.boards, positionID)
	}
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) Broadcast(event wsmodels.BoardEvent) {
	event.Time = time.Now().Format("02.01.2006 15:04:05")
	i.mu.RLock()
	defer i.mu.RUnlock()
	for _, sess := range i.boards[event.PositionID] {
		select {
		case sess.sendCh <- event:
		default:
			log.WithField("position_id", event.PositionID).Warn("board event dropped, slow subscriber")
		}
	}
}
