// Package redisrepo provides a Redis-backed implementation of
// sessions.Repo for deployments where sessions must survive restarts.
package redisrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/foodworks/go-ordering-auth/sessions"
)

const keyPrefix = "session:token:"

// retention keeps session records around well past their expiry so the
// authority can still tell an expired session apart from an unknown token.
const retention = 30 * 24 * time.Hour

var _ sessions.Repo = (*Repo)(nil)

// Repo stores sessions in Redis, keyed by access token.
type Repo struct {
	client *redis.Client
}

// New creates a Redis-backed session repository.
func New(client *redis.Client) *Repo {
	return &Repo{client: client}
}

func key(accessToken string) string {
	return keyPrefix + accessToken
}

func (r *Repo) Create(ctx context.Context, session *sessions.Session) error {
	return r.write(ctx, session)
}

func (r *Repo) Update(ctx context.Context, session *sessions.Session) error {
	existing := r.client.Exists(ctx, key(session.AccessToken))
	if err := existing.Err(); err != nil {
		return fmt.Errorf("session exists check: %w", err)
	}
	if existing.Val() == 0 {
		return sessions.ErrNotFound
	}
	return r.write(ctx, session)
}

func (r *Repo) GetByAccessToken(ctx context.Context, accessToken string) (*sessions.Session, error) {
	val, err := r.client.Get(ctx, key(accessToken)).Result()
	if err == redis.Nil {
		return nil, sessions.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var session sessions.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}
	return &session, nil
}

func (r *Repo) write(ctx context.Context, session *sessions.Session) error {
	if session.AccessToken == "" {
		return fmt.Errorf("session: missing access token")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}

	ttl := time.Until(session.ExpiresAt.Add(retention))
	if ttl <= 0 {
		ttl = time.Minute
	}
	return r.client.Set(ctx, key(session.AccessToken), data, ttl).Err()
}
