package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sender types recorded on chat messages.
const (
	SenderPatient   = "patient"
	SenderAssistant = "assistant"
	SenderDoctor    = "doctor"
)

// Message is one entry in a chat room transcript.
type Message struct {
	ID         uuid.UUID `json:"id"`
	RoomID     string    `json:"roomId"`
	SenderID   string    `json:"senderId"`
	SenderType string    `json:"senderType"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RoomSummary describes one chat room for the rooms listing.
type RoomSummary struct {
	RoomID        string    `json:"roomId"`
	MessageCount  int       `json:"messageCount"`
	LastMessageAt time.Time `json:"lastMessageAt"`
}

// Store persists chat transcripts. Room IDs follow the
// "<doctorID>_<patientID>" convention but the store treats them as
// opaque strings.
type Store interface {
	Append(ctx context.Context, msg Message) (Message, error)
	History(ctx context.Context, roomID string) ([]Message, error)
	ListRooms(ctx context.Context) ([]RoomSummary, error)
}

// Querier is the pgx query surface the Postgres store depends on,
// satisfied by pgxpool.Pool and by mocks in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore persists chat transcripts in Postgres.
type PostgresStore struct {
	db Querier
}

// NewPostgresStore creates a transcript store over the pool.
func NewPostgresStore(db Querier) *PostgresStore {
	if db == nil {
		return nil
	}
	return &PostgresStore{db: db}
}

// Append inserts the message and returns it with its assigned ID and
// timestamp filled in.
func (s *PostgresStore) Append(ctx context.Context, msg Message) (Message, error) {
	if strings.TrimSpace(msg.RoomID) == "" {
		return Message{}, fmt.Errorf("chat: room id is required")
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO chat_messages (id, room_id, sender_id, sender_type, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.Exec(ctx, query, msg.ID, msg.RoomID, msg.SenderID, msg.SenderType, msg.Text, msg.CreatedAt)
	if err != nil {
		return Message{}, fmt.Errorf("chat: append message: %w", err)
	}
	return msg, nil
}

// History returns the room transcript in chronological order. An unknown
// room yields an empty transcript, not an error.
func (s *PostgresStore) History(ctx context.Context, roomID string) ([]Message, error) {
	query := `
		SELECT id, room_id, sender_id, sender_type, body, created_at
		FROM chat_messages
		WHERE room_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := s.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("chat: load history: %w", err)
	}
	defer rows.Close()

	var history []Message
	for rows.Next() {
		var msg Message
		if err := rows.Scan(&msg.ID, &msg.RoomID, &msg.SenderID, &msg.SenderType, &msg.Text, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("chat: scan message: %w", err)
		}
		history = append(history, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chat: iterate history: %w", err)
	}
	return history, nil
}

// ListRooms returns every room with its message count, most recent
// first.
func (s *PostgresStore) ListRooms(ctx context.Context) ([]RoomSummary, error) {
	query := `
		SELECT room_id, COUNT(*), MAX(created_at)
		FROM chat_messages
		GROUP BY room_id
		ORDER BY MAX(created_at) DESC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("chat: list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []RoomSummary
	for rows.Next() {
		var room RoomSummary
		if err := rows.Scan(&room.RoomID, &room.MessageCount, &room.LastMessageAt); err != nil {
			return nil, fmt.Errorf("chat: scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chat: iterate rooms: %w", err)
	}
	return rooms, nil
}
