package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/coach-cli/internal/domain"
	"github.com/bnema/coach-cli/internal/ports"
	"github.com/bnema/coach-cli/internal/remote"
	"go.uber.org/zap"
)

// AuthState is a copy of the auth flow's state.
type AuthState struct {
	Status  domain.AuthStatus
	User    *domain.User
	Token   string
	Err     string
	ErrKind domain.ErrorKind
}

// AuthService owns the session: who is signed in and the persisted token. Only the most
// recently started operation writes the state.
type AuthService struct {
	api    ports.AuthAPI
	tokens ports.SecretStore
	clock  ports.Clock
	logger *zap.Logger

	mu     sync.Mutex
	state  AuthState
	ticket uint64
}

func NewAuthService(api ports.AuthAPI, tokens ports.SecretStore, clock ports.Clock, logger *zap.Logger) *AuthService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AuthService{
		api:    api,
		tokens: tokens,
		clock:  clock,
		logger: logger.Named("auth"),
		state:  AuthState{Status: domain.AuthAnonymous},
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) remote.Result[domain.User] {
	credentials := domain.Credentials{Email: strings.TrimSpace(email), Password: password}
	return s.authenticate(ctx, "login", msgLogin, func(ctx context.Context) (domain.AuthSession, error) {
		return s.api.Login(ctx, credentials)
	})
}

// Register signs up and signs in. The gender is normalized and the email is stamped as verified
// at submission time.
func (s *AuthService) Register(ctx context.Context, registration domain.Registration) remote.Result[domain.User] {
	registration.Genre = domain.NormalizeGender(registration.Genre)
	registration.EmailVerifiedAt = s.clock.Now().UTC().Format(time.RFC3339)

	return s.authenticate(ctx, "register", msgRegister, func(ctx context.Context) (domain.AuthSession, error) {
		return s.api.Register(ctx, registration)
	})
}

// Logout always ends Anonymous with nothing persisted. A failed remote call is logged and
// returned, but it never keeps the local session alive.
func (s *AuthService) Logout(ctx context.Context) error {
	ticket, _ := s.begin("logout")

	remoteErr := s.api.Logout(ctx)
	if remoteErr != nil {
		s.logger.Warn("remote logout failed", zap.Error(remoteErr))
	}
	purgeErr := s.purge(context.WithoutCancel(ctx))

	s.mu.Lock()
	if ticket == s.ticket {
		s.state = AuthState{Status: domain.AuthAnonymous}
	}
	s.mu.Unlock()

	if purgeErr != nil {
		return fmt.Errorf("logout: purge local session: %w", errors.Join(purgeErr, remoteErr))
	}
	if remoteErr != nil {
		return fmt.Errorf("logout: %s: %w", msgLogout, remoteErr)
	}

	return nil
}

// CheckAuth revalidates a persisted session against the server. Any failure purges it, except
// cancellation, which leaves the stored session and the previous state untouched.
func (s *AuthService) CheckAuth(ctx context.Context) AuthState {
	ticket, pre := s.begin("check")

	user, token, err := s.revalidate(ctx)
	if errors.Is(err, context.Canceled) {
		s.logger.Debug("auth check canceled")

		s.mu.Lock()
		defer s.mu.Unlock()
		if ticket == s.ticket {
			s.state = pre
		}
		return s.snapshotLocked()
	}
	if err != nil {
		s.logger.Info("stored session rejected", zap.Error(err))
		if purgeErr := s.purge(context.WithoutCancel(ctx)); purgeErr != nil {
			s.logger.Warn("purge stored session", zap.Error(purgeErr))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket == s.ticket {
		if err != nil || token == "" {
			s.state = AuthState{Status: domain.AuthAnonymous}
		} else {
			s.state = AuthState{Status: domain.AuthAuthenticated, User: &user, Token: token}
		}
	}

	return s.snapshotLocked()
}

func (s *AuthService) ResetError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Err = ""
	s.state.ErrKind = ""
}

func (s *AuthService) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *AuthService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Token
}

// revalidate returns an empty token and no error when nothing is stored.
func (s *AuthService) revalidate(ctx context.Context) (domain.User, string, error) {
	token, err := s.tokens.Get(ctx, domain.TokenKey)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return domain.User{}, "", nil
		}
		return domain.User{}, "", fmt.Errorf("read stored token: %w", err)
	}
	userData, err := s.tokens.Get(ctx, domain.UserDataKey)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return domain.User{}, "", nil
		}
		return domain.User{}, "", fmt.Errorf("read stored user data: %w", err)
	}
	if strings.TrimSpace(token) == "" || strings.TrimSpace(userData) == "" {
		return domain.User{}, "", nil
	}

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("revalidate session: %w", err)
	}
	if err := s.storeUser(ctx, user); err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (s *AuthService) authenticate(ctx context.Context, op, fallback string, call func(context.Context) (domain.AuthSession, error)) remote.Result[domain.User] {
	ticket, pre := s.begin(op)

	session, err := call(ctx)
	if err == nil {
		err = s.persist(ctx, session)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			if ticket == s.ticket {
				s.state = pre
			}
			return remote.Fail[domain.User]("", "", err)
		}

		kind := domain.KindOf(err)
		message := domain.MessageOf(err, fallback)
		if ticket == s.ticket {
			s.state = AuthState{Status: domain.AuthError, Err: message, ErrKind: kind}
		}
		s.logger.Warn("authentication failed", zap.String("op", op), zap.String("kind", string(kind)), zap.Error(err))
		return remote.Fail[domain.User](kind, message, err)
	}

	if ticket == s.ticket {
		user := session.User
		s.state = AuthState{Status: domain.AuthAuthenticated, User: &user, Token: session.Token}
	}
	s.logger.Debug("authenticated", zap.String("op", op), zap.Int64("user_id", session.User.ID))

	return remote.Ok(session.User)
}

// begin starts an operation and returns its ticket with the state it replaced.
func (s *AuthService) begin(op string) (uint64, AuthState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pre := s.snapshotLocked()
	s.ticket++
	s.state.Status = domain.AuthAuthenticating
	s.state.Err = ""
	s.state.ErrKind = ""
	s.logger.Debug("auth transition", zap.String("op", op), zap.String("status", string(domain.AuthAuthenticating)))

	return s.ticket, pre
}

func (s *AuthService) persist(ctx context.Context, session domain.AuthSession) error {
	if err := s.tokens.Put(ctx, domain.TokenKey, session.Token); err != nil {
		return fmt.Errorf("store auth token: %w", err)
	}
	if err := s.storeUser(ctx, session.User); err != nil {
		if rollbackErr := s.tokens.Delete(context.WithoutCancel(ctx), domain.TokenKey); rollbackErr != nil {
			return fmt.Errorf("store user data and rollback auth token: %w", errors.Join(err, rollbackErr))
		}
		return err
	}

	return nil
}

func (s *AuthService) storeUser(ctx context.Context, user domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user data: %w", err)
	}
	if err := s.tokens.Put(ctx, domain.UserDataKey, string(data)); err != nil {
		return fmt.Errorf("store user data: %w", err)
	}

	return nil
}

func (s *AuthService) purge(ctx context.Context) error {
	var errs error
	if err := s.tokens.Delete(ctx, domain.TokenKey); err != nil {
		errs = errors.Join(errs, fmt.Errorf("delete auth token: %w", err))
	}
	if err := s.tokens.Delete(ctx, domain.UserDataKey); err != nil {
		errs = errors.Join(errs, fmt.Errorf("delete user data: %w", err))
	}

	return errs
}

func (s *AuthService) snapshotLocked() AuthState {
	state := s.state
	if s.state.User != nil {
		user := *s.state.User
		state.User = &user
	}

	return state
}
