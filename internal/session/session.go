// Package session manages the locally stored demo account.
//
// There is no server: signing up stores a profile, and logging in either matches the stored
// profile or replaces it. Passwords are validated for length on sign-up and otherwise ignored;
// they are never persisted.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/spotui/internal/kvstore"
	"github.com/desertthunder/spotui/internal/models"
)

// Storage keys.
const (
	UserKey     = "user"
	LoggedInKey = "is_logged_in"
)

// MinPasswordLength is the shortest password sign-up accepts.
const MinPasswordLength = 6

var (
	ErrMissingFields      = errors.New("please fill in all required fields")
	ErrMissingBirthDate   = errors.New("please enter your date of birth")
	ErrMissingGender      = errors.New("please select your gender")
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrSignUpFailed       = errors.New("failed to create account, please try again")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrLoginFailed        = errors.New("invalid username or password, please try again")
)

// Gender is the sign-up gender choice.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// SignUpForm holds the sign-up screen fields.
type SignUpForm struct {
	Email    string
	Password string
	FullName string
	Day      string
	Month    string
	Year     string
	Gender   Gender
}

// Validate checks the form in screen order and returns the first problem.
func (f SignUpForm) Validate() error {
	switch {
	case f.Email == "" || f.Password == "" || f.FullName == "":
		return ErrMissingFields
	case f.Day == "" || f.Month == "" || f.Year == "":
		return ErrMissingBirthDate
	case f.Gender != Male && f.Gender != Female:
		return ErrMissingGender
	case len([]rune(f.Password)) < MinPasswordLength:
		return ErrPasswordTooShort
	}
	return nil
}

// UserPatch carries profile edits. Empty fields are left unchanged.
type UserPatch struct {
	Name           string
	Email          string
	Username       string
	ProfilePicture string
}

// Service reads and writes the session keys.
type Service struct {
	store  kvstore.Store
	logger *log.Logger
}

// New creates a session service.
func New(store kvstore.Store, logger *log.Logger) *Service {
	return &Service{store: store, logger: logger.WithPrefix("session")}
}

// SignUp validates form, stores the profile and marks the user logged in. The full name doubles as
// the username.
func (s *Service) SignUp(ctx context.Context, form SignUpForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	user := models.User{Name: form.FullName, Email: form.Email, Username: form.FullName}
	if err := s.saveUser(ctx, user); err != nil {
		s.logger.Error("sign up failed", "error", err)
		return fmt.Errorf("%w: %w", ErrSignUpFailed, err)
	}
	if err := s.store.Set(ctx, LoggedInKey, "true"); err != nil {
		s.logger.Error("sign up failed", "error", err)
		return fmt.Errorf("%w: %w", ErrSignUpFailed, err)
	}

	s.logger.Info("signed up", "email", user.Email)
	return nil
}

// Login accepts any credentials. A stored user whose email or username matches identifier is
// logged in as is; otherwise the stored profile is replaced by one derived from identifier.
func (s *Service) Login(ctx context.Context, identifier, password string) error {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || strings.TrimSpace(password) == "" {
		return ErrMissingCredentials
	}

	current, err := s.loadUser(ctx)
	switch {
	case err == nil && (current.Email == identifier || current.Username == identifier):
		s.logger.Debug("matched stored user", "identifier", identifier)
	case err == nil:
		current.Name = identifier
		current.Email = emailFor(identifier)
		current.Username = identifier
		if err := s.saveUser(ctx, *current); err != nil {
			return s.loginFailed(err)
		}
	case kvstore.IsNotFound(err):
		user := models.User{Name: identifier, Email: emailFor(identifier), Username: identifier}
		if err := s.saveUser(ctx, user); err != nil {
			return s.loginFailed(err)
		}
	default:
		return s.loginFailed(err)
	}

	if err := s.store.Set(ctx, LoggedInKey, "true"); err != nil {
		return s.loginFailed(err)
	}

	s.logger.Info("logged in", "identifier", identifier)
	return nil
}

func (s *Service) loginFailed(err error) error {
	s.logger.Error("login failed", "error", err)
	return fmt.Errorf("%w: %w", ErrLoginFailed, err)
}

func emailFor(identifier string) string {
	if strings.Contains(identifier, "@") {
		return identifier
	}
	return identifier + "@example.com"
}

// Logout clears the logged-in flag. The profile is kept for the next login.
func (s *Service) Logout(ctx context.Context) {
	if err := s.store.Remove(ctx, LoggedInKey); err != nil {
		s.logger.Error("logout failed", "error", err)
		return
	}
	s.logger.Info("logged out")
}

// IsLoggedIn reports whether the logged-in flag is set. Read failures count as logged out.
func (s *Service) IsLoggedIn(ctx context.Context) bool {
	v, err := s.store.Get(ctx, LoggedInKey)
	if err != nil {
		if !kvstore.IsNotFound(err) {
			s.logger.Error("failed to read login status", "error", err)
		}
		return false
	}
	return v == "true"
}

// User returns the stored profile.
func (s *Service) User(ctx context.Context) (*models.User, bool) {
	user, err := s.loadUser(ctx)
	if err != nil {
		if !kvstore.IsNotFound(err) {
			s.logger.Error("failed to read user", "error", err)
		}
		return nil, false
	}
	return user, true
}

// UpdateUser merges patch into the stored profile. It returns false when no profile exists or the
// write fails.
func (s *Service) UpdateUser(ctx context.Context, patch UserPatch) bool {
	user, ok := s.User(ctx)
	if !ok {
		return false
	}

	if v := strings.TrimSpace(patch.Name); v != "" {
		user.Name = v
	}
	if v := strings.TrimSpace(patch.Email); v != "" {
		user.Email = v
	}
	if v := strings.TrimSpace(patch.Username); v != "" {
		user.Username = v
	}
	if v := strings.TrimSpace(patch.ProfilePicture); v != "" {
		user.ProfilePicture = v
	}

	if err := s.saveUser(ctx, *user); err != nil {
		s.logger.Error("failed to update user", "error", err)
		return false
	}
	return true
}

func (s *Service) loadUser(ctx context.Context) (*models.User, error) {
	raw, err := s.store.Get(ctx, UserKey)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("corrupt user record: %w", err)
	}
	return &user, nil
}

func (s *Service) saveUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, UserKey, string(data))
}
