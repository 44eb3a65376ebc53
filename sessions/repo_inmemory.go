package sessions

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo is an in-memory implementation of Repo.
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]*Session // access token -> session
}

// NewInMemoryRepo creates a new in-memory session repository.
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sessions: make(map[string]*Session),
	}
}

func (r *InMemoryRepo) Create(ctx context.Context, session *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.ID == "" {
		session.ID = uuid.New().String()
	}

	stored := *session
	r.sessions[stored.AccessToken] = &stored
	return nil
}

func (r *InMemoryRepo) Update(ctx context.Context, session *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.AccessToken]; !ok {
		return ErrNotFound
	}

	stored := *session
	r.sessions[stored.AccessToken] = &stored
	return nil
}

func (r *InMemoryRepo) GetByAccessToken(ctx context.Context, accessToken string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[accessToken]
	if !ok {
		return nil, ErrNotFound
	}
	found := *session
	return &found, nil
}
