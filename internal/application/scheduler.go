package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/coach-cli/internal/domain"
	"github.com/bnema/coach-cli/internal/ports"
	"github.com/bnema/coach-cli/internal/remote"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var ErrMissingJoinURL = errors.New("join response has no join url")

// Scheduler books, lists and joins coaching sessions.
type Scheduler struct {
	api    ports.MeetingAPI
	opener ports.URLOpener
	clock  ports.Clock
	logger *zap.Logger

	sessions *remote.Store[domain.Session, domain.SessionDraft]
	// tokens caches the meeting SDK token in its selection.
	tokens *remote.Store[domain.MeetingToken, remote.NoInput]
}

// NewScheduler builds the flow. opener may be nil, in which case Join only fetches the URL.
func NewScheduler(api ports.MeetingAPI, opener ports.URLOpener, clock ports.Clock, logger *zap.Logger) *Scheduler {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		api:    api,
		opener: opener,
		clock:  clock,
		logger: logger.Named("sessions"),
		sessions: remote.NewStore(remote.Config[domain.Session, domain.SessionDraft]{
			Name: "sessions",
			List: api.ListMeetings,
			Create: func(ctx context.Context, draft domain.SessionDraft) (domain.Session, error) {
				return api.CreateMeeting(ctx, draft.Request())
			},
			Messages: remote.Messages{FetchAll: msgSessionsFetch, Create: msgSessionCreate},
			Logger:   logger,
		}),
		tokens: remote.NewStore(remote.Config[domain.MeetingToken, remote.NoInput]{
			Name:   "meeting_token",
			Logger: logger,
		}),
	}
}

func (s *Scheduler) List(ctx context.Context) remote.Result[[]domain.Session] {
	return s.sessions.FetchAll(ctx)
}

// Create validates draft locally and only then books it. An invalid draft never reaches the API.
func (s *Scheduler) Create(ctx context.Context, draft domain.SessionDraft) remote.Result[domain.Session] {
	if err := draft.Validate(s.clock.Now()); err != nil {
		s.logger.Debug("session draft rejected", zap.Error(err))
		return remote.Fail[domain.Session](domain.KindValidation, domain.MessageOf(err, msgSessionCreate), err)
	}

	return s.sessions.Create(ctx, draft)
}

// Join fetches the session's join URL and opens it. Joining again simply fetches it again.
func (s *Scheduler) Join(ctx context.Context, id int64) remote.Result[domain.Session] {
	res := s.JoinURL(ctx, id)
	if !res.OK() || s.opener == nil {
		return res
	}

	joinURL := strings.TrimSpace(res.Value.JoinURL)
	if err := s.opener.Open(ctx, joinURL); err != nil {
		s.logger.Warn("open join url", zap.Int64("session_id", id), zap.Error(err))
		return remote.Result[domain.Session]{
			Value:   res.Value,
			Err:     fmt.Errorf("open join url: %w", err),
			Message: "Impossible d'ouvrir le lien : " + joinURL,
		}
	}

	return res
}

// JoinURL fetches the session's join URL into the selection without opening it. A response
// without a URL fails like any other rejected request.
func (s *Scheduler) JoinURL(ctx context.Context, id int64) remote.Result[domain.Session] {
	return s.sessions.Select(ctx, "join", msgSessionJoin, func(ctx context.Context) (domain.Session, error) {
		session, err := s.api.JoinMeeting(ctx, id)
		if err != nil {
			return domain.Session{}, err
		}
		if strings.TrimSpace(session.JoinURL) == "" {
			return domain.Session{}, &domain.APIError{
				Kind: domain.KindServerRejected,
				Err:  fmt.Errorf("session %d: %w", id, ErrMissingJoinURL),
			}
		}
		return session, nil
	})
}

// ZoomToken returns the cached meeting SDK token, fetching a new one once it has expired.
func (s *Scheduler) ZoomToken(ctx context.Context) remote.Result[domain.MeetingToken] {
	if cached := s.tokens.Snapshot().Selected; cached != nil && !cached.Expired(s.clock.Now()) {
		return remote.Ok(*cached)
	}

	return s.tokens.Select(ctx, "fetch", msgMeetingToken, func(ctx context.Context) (domain.MeetingToken, error) {
		raw, err := s.api.MeetingToken(ctx)
		if err != nil {
			return domain.MeetingToken{}, err
		}
		return s.decodeToken(raw), nil
	})
}

// Snapshot reports the sessions store; a meeting token failure shows as its error.
func (s *Scheduler) Snapshot() remote.Snapshot[domain.Session] {
	snapshot := s.sessions.Snapshot()
	if snapshot.Err == "" {
		if token := s.tokens.Snapshot(); token.Err != "" {
			snapshot.Err = token.Err
			snapshot.ErrKind = token.ErrKind
		}
	}

	return snapshot
}

func (s *Scheduler) ClearError() {
	s.sessions.ClearError()
	s.tokens.ClearError()
}

// decodeToken reads the expiry without verifying the signature; the server checks the token.
func (s *Scheduler) decodeToken(raw string) domain.MeetingToken {
	token := domain.MeetingToken{Token: raw}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		s.logger.Debug("meeting token is not a jwt, expiry unknown", zap.Error(err))
		return token
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return token
	}
	token.ExpiresAt = exp.Time

	return token
}
