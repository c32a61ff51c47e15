package service

import (
	"context"
	"time"

	"backoffice/internal/apiclient"
	"backoffice/internal/auth"
	"backoffice/internal/domain"
	"backoffice/internal/events"
	"backoffice/internal/models"

	"github.com/rs/zerolog"
)

const welcomeMessage = "Bienvenido!"

// LoginResult is what a successful login hands to the web layer.
type LoginResult struct {
	Token    string
	User     *models.User
	Employee *models.Employee
	State    auth.State
}

// SessionService signs employees in and out and keeps their state in the
// session repository.
type SessionService struct {
	authenticator domain.Authenticator
	sessions      domain.SessionRepository
	notifier      domain.Notifier
	publisher     domain.EventPublisher
	logger        *zerolog.Logger
	now           func() time.Time
}

func NewSessionService(
	authenticator domain.Authenticator,
	sessions domain.SessionRepository,
	notifier domain.Notifier,
	publisher domain.EventPublisher,
	logger *zerolog.Logger,
) *SessionService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &SessionService{
		authenticator: authenticator,
		sessions:      sessions,
		notifier:      notifier,
		publisher:     publisher,
		logger:        logger,
		now:           time.Now,
	}
}

// Login never returns an error: failures become an error notice carrying the
// backend message and a nil result.
func (s *SessionService) Login(ctx context.Context, payload models.LoginPayload) *LoginResult {
	state := auth.BeginLogin(auth.State{})

	resp, err := s.authenticator.Login(ctx, payload)
	if err != nil {
		state = auth.LoginFailed(state)
		s.logger.Warn().
			Err(err).
			Str("email", payload.Email).
			Int("status", apiclient.StatusOf(err)).
			Bool("authenticated", state.Authenticated).
			Msg("login failed")
		s.notify(ctx, events.Error(apiclient.MessageOf(err)))
		return nil
	}

	state = auth.SignedIn(state, *resp)
	session := auth.ToSession(state)
	session.CreatedAt = s.now()
	if err := s.sessions.SetSession(ctx, session); err != nil {
		s.logger.Error().Err(err).Str("username", resp.Username).Msg("failed to persist session")
		s.notify(ctx, events.Error(models.DefaultErrorMessage))
		return nil
	}

	s.logger.Info().Str("username", resp.Username).Str("role", string(state.Role())).Msg("signed in")
	s.notify(ctx, events.Success(welcomeMessage))
	s.publish(events.EventSignedIn, events.SessionEventPayload{Username: resp.Username, Role: string(state.Role())})

	return &LoginResult{
		Token:    resp.Token,
		User:     state.User,
		Employee: state.Employee,
		State:    state,
	}
}

// Logout drops the session unconditionally. Repository errors are logged only.
func (s *SessionService) Logout(ctx context.Context, token string) auth.State {
	current := s.Current(ctx, token)
	if token != "" {
		if err := s.sessions.ClearSession(ctx, token); err != nil {
			s.logger.Error().Err(err).Msg("failed to clear session")
		}
	}
	if current.Authenticated {
		username := ""
		if current.User != nil {
			username = current.User.Username
		}
		s.publish(events.EventSignedOut, events.SessionEventPayload{Username: username})
	}
	return auth.SignedOut(current)
}

// Current loads the state stored for token. Unknown tokens and repository
// failures yield the zero state.
func (s *SessionService) Current(ctx context.Context, token string) auth.State {
	if token == "" {
		return auth.State{}
	}
	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load session")
		return auth.State{}
	}
	return auth.FromSession(session)
}

// Allow applies the login throttle for key.
func (s *SessionService) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	allowed, err := s.sessions.CheckRateLimit(ctx, key, limit, window)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("rate limit check failed")
		return true
	}
	return allowed
}

func (s *SessionService) notify(ctx context.Context, n models.Notice) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, n)
	}
}

func (s *SessionService) publish(eventType string, payload interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishJSON(eventType, payload); err != nil {
		s.logger.Warn().Err(err).Str("event", eventType).Msg("failed to publish event")
	}
}
