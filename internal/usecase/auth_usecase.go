package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/logging"
	"storefront/internal/metrics"
	"storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrInvalidSignUpData    = errors.New("invalid sign up data")
)

// Shopper-facing messages.
const (
	MsgSignInSuccess        = "Successfully signed in!"
	MsgInvalidCredentials   = "Invalid email or password. Please try again."
	MsgAccountAlreadyExists = "An account with this email already exists."
	MsgAccountCreated       = "Account created successfully!"
)

// IAuthUseCase manages the local user directory and the current session.
type IAuthUseCase interface {
	SignIn(ctx context.Context, creds entities.SignInCredentials) (entities.AuthResponse, error)
	SignUp(ctx context.Context, data entities.SignUpData) (entities.AuthResponse, error)
	SignOut(ctx context.Context) error
	CurrentUser() *entities.User
	IsAuthenticated() bool
	Subscribe(fn func(*entities.User)) (unsubscribe func())
}

type AuthConfig struct {
	SignInDelay time.Duration
	SignUpDelay time.Duration
}

type AuthUseCase struct {
	mu      sync.Mutex
	current *entities.User
	repo    interfaces.IUserDirectoryRepository
	clock   interfaces.IClock
	delayer interfaces.IDelayer
	cfg     AuthConfig
	subs    subscribers[*entities.User]
	log     *slog.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

// NewAuthUseCase restores a remembered session, if any.
func NewAuthUseCase(ctx context.Context, repo interfaces.IUserDirectoryRepository, clock interfaces.IClock, delayer interfaces.IDelayer, cfg AuthConfig) (*AuthUseCase, error) {
	u := &AuthUseCase{
		repo:    repo,
		clock:   clock,
		delayer: delayer,
		cfg:     cfg,
		log:     logging.New("auth"),
	}
	session, err := repo.LoadSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	u.current = session
	return u, nil
}

// SignIn matches the email case-insensitively and the password exactly. The
// session is persisted only when RememberMe is set.
func (u *AuthUseCase) SignIn(ctx context.Context, creds entities.SignInCredentials) (entities.AuthResponse, error) {
	if err := u.delayer.Wait(ctx, u.cfg.SignInDelay); err != nil {
		return entities.AuthResponse{}, err
	}

	users, err := u.repo.LoadUsers(ctx)
	if err != nil {
		return entities.AuthResponse{}, err
	}

	idx := slices.IndexFunc(users, func(r entities.RegisteredUser) bool {
		return strings.EqualFold(r.Email, creds.Email) && r.Password == creds.Password
	})
	if idx == -1 {
		metrics.AuthAttempts.WithLabelValues("sign_in", metrics.OutcomeFailure).Inc()
		return entities.AuthResponse{Success: false, Message: MsgInvalidCredentials}, ErrInvalidCredentials
	}

	user := users[idx].Public()
	if creds.RememberMe {
		if err := u.repo.SaveSession(ctx, user); err != nil {
			return entities.AuthResponse{}, err
		}
	}
	u.setCurrent(&user)

	metrics.AuthAttempts.WithLabelValues("sign_in", metrics.OutcomeSuccess).Inc()
	u.log.Info("[auth][usecase] sign-in success", "user_id", user.ID, "remember_me", creds.RememberMe)
	return entities.AuthResponse{Success: true, Message: MsgSignInSuccess, User: &user}, nil
}

func (u *AuthUseCase) SignUp(ctx context.Context, data entities.SignUpData) (entities.AuthResponse, error) {
	data.Email = strings.TrimSpace(data.Email)
	data.Name = strings.TrimSpace(data.Name)
	if data.Email == "" || data.Name == "" || data.Password == "" {
		return entities.AuthResponse{}, ErrInvalidSignUpData
	}

	if err := u.delayer.Wait(ctx, u.cfg.SignUpDelay); err != nil {
		return entities.AuthResponse{}, err
	}

	u.mu.Lock()
	users, err := u.repo.LoadUsers(ctx)
	if err != nil {
		u.mu.Unlock()
		return entities.AuthResponse{}, err
	}
	exists := slices.ContainsFunc(users, func(r entities.RegisteredUser) bool {
		return strings.EqualFold(r.Email, data.Email)
	})
	if exists {
		u.mu.Unlock()
		metrics.AuthAttempts.WithLabelValues("sign_up", metrics.OutcomeFailure).Inc()
		return entities.AuthResponse{Success: false, Message: MsgAccountAlreadyExists}, ErrAccountAlreadyExists
	}

	// Passwords are stored as typed. This directory is a local placeholder,
	// not an identity provider.
	registered := entities.RegisteredUser{
		ID:        uuid.NewString(),
		Email:     data.Email,
		Name:      data.Name,
		Password:  data.Password,
		CreatedAt: u.clock.Now(),
	}
	users = append(users, registered)
	if err := u.repo.SaveUsers(ctx, users); err != nil {
		u.mu.Unlock()
		return entities.AuthResponse{}, err
	}
	user := registered.Public()
	if err := u.repo.SaveSession(ctx, user); err != nil {
		u.mu.Unlock()
		return entities.AuthResponse{}, err
	}
	u.current = &user
	u.mu.Unlock()
	u.subs.notify(cloneUser(&user))

	metrics.AuthAttempts.WithLabelValues("sign_up", metrics.OutcomeSuccess).Inc()
	u.log.Info("[auth][usecase] sign-up success", "user_id", user.ID)
	return entities.AuthResponse{Success: true, Message: MsgAccountCreated, User: &user}, nil
}

// SignOut forgets the session. Registered users are kept.
func (u *AuthUseCase) SignOut(ctx context.Context) error {
	if err := u.repo.ClearSession(ctx); err != nil {
		return err
	}
	u.setCurrent(nil)
	return nil
}

func (u *AuthUseCase) CurrentUser() *entities.User {
	u.mu.Lock()
	defer u.mu.Unlock()
	return cloneUser(u.current)
}

func (u *AuthUseCase) IsAuthenticated() bool {
	return u.CurrentUser() != nil
}

func (u *AuthUseCase) Subscribe(fn func(*entities.User)) func() {
	return u.subs.add(fn)
}

func (u *AuthUseCase) setCurrent(user *entities.User) {
	u.mu.Lock()
	u.current = cloneUser(user)
	u.mu.Unlock()
	u.subs.notify(cloneUser(user))
}

func cloneUser(user *entities.User) *entities.User {
	if user == nil {
		return nil
	}
	c := *user
	return &c
}
