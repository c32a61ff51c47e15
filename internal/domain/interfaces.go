package domain

import (
	"context"
	"time"

	"backoffice/internal/models"
)

// SessionRepository persists sign-in sessions keyed by backend token.
type SessionRepository interface {
	GetSession(ctx context.Context, token string) (*models.Session, error)
	SetSession(ctx context.Context, session *models.Session) error
	ClearSession(ctx context.Context, token string) error
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// Authenticator exchanges credentials for a backend token.
type Authenticator interface {
	Login(ctx context.Context, payload models.LoginPayload) (*models.LoginResponse, error)
}

// Notifier delivers user-facing notices for the request in ctx.
type Notifier interface {
	Notify(ctx context.Context, notice models.Notice)
}

type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}
