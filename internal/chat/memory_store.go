package chat

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps transcripts in process memory. Used in tests and
// when no database is configured; transcripts do not survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string][]Message
}

// NewMemoryStore creates an empty in-memory transcript store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: map[string][]Message{}}
}

// Append records the message in its room.
func (s *MemoryStore) Append(ctx context.Context, msg Message) (Message, error) {
	if strings.TrimSpace(msg.RoomID) == "" {
		return Message{}, fmt.Errorf("chat: room id is required")
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[msg.RoomID] = append(s.rooms[msg.RoomID], msg)
	return msg, nil
}

// History returns a copy of the room transcript in append order.
func (s *MemoryStore) History(ctx context.Context, roomID string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.rooms[roomID]
	out := make([]Message, len(history))
	copy(out, history)
	return out, nil
}

// ListRooms returns a summary per room, most recently active first.
func (s *MemoryStore) ListRooms(ctx context.Context) ([]RoomSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]RoomSummary, 0, len(s.rooms))
	for roomID, history := range s.rooms {
		if len(history) == 0 {
			continue
		}
		rooms = append(rooms, RoomSummary{
			RoomID:        roomID,
			MessageCount:  len(history),
			LastMessageAt: history[len(history)-1].CreatedAt,
		})
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].LastMessageAt.After(rooms[j].LastMessageAt)
	})
	return rooms, nil
}
