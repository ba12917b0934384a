package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"tutorbuddy/internal/credentials"
	"tutorbuddy/internal/models"
	"tutorbuddy/internal/security"
	"tutorbuddy/internal/store"
	"tutorbuddy/internal/validation"
)

var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidRole        = errors.New("role must be child or guardian")
)

// AuthService runs the demo sign-up and sign-in flows. No account
// database exists; credentials are validated for shape, never checked
// against a user store.
type AuthService struct {
	store  *store.Store
	tokens *security.TokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(s *store.Store, tokens *security.TokenIssuer) *AuthService {
	return &AuthService{store: s, tokens: tokens}
}

// SignUpInput carries the registration form
type SignUpInput struct {
	ChildName        string      `json:"childName"`
	GuardianName     string      `json:"guardianName"`
	Email            string      `json:"email"`
	Password         string      `json:"password"`
	ConfirmPassword  string      `json:"confirmPassword"`
	Role             models.Role `json:"role"`
	VoiceAuthEnabled bool        `json:"voiceAuthEnabled"`
}

// SignInInput carries the login form
type SignInInput struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// SignUp validates the registration form and starts a session. Every
// check runs before any state changes, so a failed sign-up leaves the
// store untouched.
func (s *AuthService) SignUp(input SignUpInput) (models.UserIdentity, string, error) {
	if !input.Role.Valid() {
		return models.UserIdentity{}, "", ErrInvalidRole
	}
	if err := validation.ValidateName("childName", input.ChildName); err != nil {
		return models.UserIdentity{}, "", err
	}
	if err := validation.ValidateName("guardianName", input.GuardianName); err != nil {
		return models.UserIdentity{}, "", err
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		return models.UserIdentity{}, "", err
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		return models.UserIdentity{}, "", err
	}
	if input.Password != input.ConfirmPassword {
		return models.UserIdentity{}, "", ErrPasswordMismatch
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return models.UserIdentity{}, "", err
	}

	identity := models.UserIdentity{
		ID:               uuid.New().String(),
		ChildName:        input.ChildName,
		GuardianName:     input.GuardianName,
		Email:            input.Email,
		Role:             input.Role,
		PasswordHash:     hash,
		VoiceAuthEnabled: input.VoiceAuthEnabled,
		CreatedAt:        time.Now(),
	}

	s.store.Login(identity)
	log.Printf("Account created: %s (%s)", identity.DisplayName(), identity.Role)

	token, err := s.tokens.Issue(identity.ID, identity.Role)
	if err != nil {
		return models.UserIdentity{}, "", err
	}
	return identity, token, nil
}

// SignIn starts a demo session. Any email and password shape is accepted;
// the child name defaults to a generated guest name.
func (s *AuthService) SignIn(input SignInInput) (models.UserIdentity, string, error) {
	if input.Email == "" || input.Password == "" {
		return models.UserIdentity{}, "", ErrMissingCredentials
	}
	if !input.Role.Valid() {
		return models.UserIdentity{}, "", ErrInvalidRole
	}

	childName, err := credentials.GenerateGuestName()
	if err != nil || childName == "" {
		childName = "Demo Child"
	}

	identity := models.UserIdentity{
		ID:           uuid.New().String(),
		ChildName:    childName,
		GuardianName: "Demo Guardian",
		Email:        input.Email,
		Role:         input.Role,
		CreatedAt:    time.Now(),
	}

	s.store.Login(identity)
	log.Printf("Session started: %s (%s)", identity.DisplayName(), identity.Role)

	token, err := s.tokens.Issue(identity.ID, identity.Role)
	if err != nil {
		return models.UserIdentity{}, "", err
	}
	return identity, token, nil
}

// SignOut ends the session. Settings, progression and history stay.
func (s *AuthService) SignOut() {
	s.store.Logout()
}

// TokenDuration returns the session token lifetime
func (s *AuthService) TokenDuration() time.Duration {
	return s.tokens.Duration()
}
