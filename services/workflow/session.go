package workflow

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"mindease/models"
)

// WorkflowSession holds everything accumulated during one booking workflow:
// the current step, the draft, the provider assignment resolved at start and
// the most recently resolved slot list. It lives in the session store for the
// duration of one booking and is discarded on completion, cancellation or
// TTL expiry.
type WorkflowSession struct {
	SessionID string `json:"sessionId"`
	ClientID  string `json:"clientId"`
	Step      Step   `json:"step"`

	Draft models.BookingDraft `json:"draft"`

	Provider       *models.ProviderAssignment `json:"provider,omitempty"`
	ProviderNotice string                     `json:"providerNotice,omitempty"`

	// Slots is the last committed slot resolution; SlotsDate records which
	// date it was issued for so stale responses can be recognized.
	Slots     []models.TimeSlot `json:"slots,omitempty"`
	SlotsDate string            `json:"slotsDate,omitempty"`

	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionStore persists workflow sessions for their lifetime.
type SessionStore interface {
	Save(ctx context.Context, session *WorkflowSession) error
	Get(ctx context.Context, sessionID string) (*WorkflowSession, error)
	Delete(ctx context.Context, sessionID string) error
}

const sessionKeyPrefix = "booking:session:"

// RedisSessionStore keeps sessions as JSON blobs with a TTL spanning one
// booking session. Abandoned sessions expire on their own; there is no
// save-for-later.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, session *WorkflowSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, sessionKeyPrefix+session.SessionID, data, s.TTL).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*WorkflowSession, error) {
	data, err := s.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session WorkflowSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
