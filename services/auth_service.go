package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostel-backend/apperr"
	"hostel-backend/models"
	"hostel-backend/repository"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Mobile   string
	Aadhaar  string
	PANCard  string
}

// AuthService handles registration and login.
type AuthService struct {
	users  repository.UserRepository
	tokens *TokenService
}

// NewAuthService creates a new auth service.
func NewAuthService(users repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register validates the form, rejects uniqueness collisions with a
// field-specific message, and stores the user with a hashed password and a
// zeroed booking snapshot.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	mobile := stripNonDigits(in.Mobile)
	aadhaar := stripNonDigits(in.Aadhaar)
	pan := strings.ToUpper(strings.TrimSpace(in.PANCard))

	if name == "" || email == "" || in.Password == "" || mobile == "" || aadhaar == "" {
		return nil, apperr.Validation("", "All fields are required (except PAN card which is optional)")
	}
	if !isEmail(email) {
		return nil, apperr.Validation("email", "Invalid email format")
	}
	if !isStrongPassword(in.Password) {
		return nil, apperr.Validation("password", "Password must be at least 8 characters long and contain uppercase, lowercase, number and special character")
	}
	if len(mobile) != 10 {
		return nil, apperr.Validation("mobile", "Mobile number must be exactly 10 digits")
	}
	if len(aadhaar) != 12 {
		return nil, apperr.Validation("aadhaarNumber", "Aadhaar number must be exactly 12 digits")
	}
	if pan != "" && !isPAN(pan) {
		return nil, apperr.Validation("panCard", "Invalid PAN card format")
	}

	if err := s.checkDuplicates(ctx, email, mobile, aadhaar); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:          name,
		Email:         email,
		Mobile:        mobile,
		AadhaarNumber: aadhaar,
		Password:      string(hash),
		AdminApproval: true,
	}
	if pan != "" {
		user.PANCard = &pan
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Two registrations can pass the lookup and race on the insert; the
		// unique indexes catch the loser.
		if conflict := duplicateKeyConflict(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates by email and password and issues a session token.
// Lookup and password failures are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", apperr.Validation("", "Email and password are required")
	}
	if !isEmail(email) {
		return nil, "", apperr.Validation("email", "Invalid email format")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", apperr.ErrInvalidCredentials
	}
	if !user.AdminApproval {
		return nil, "", apperr.ErrPendingApproval
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user, token, nil
}

func (s *AuthService) checkDuplicates(ctx context.Context, email, mobile, aadhaar string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return apperr.Conflict("email", "User already exists with this email address")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check email: %w", err)
	}

	if _, err := s.users.FindByMobile(ctx, mobile); err == nil {
		return apperr.Conflict("mobile", "User already exists with this mobile number")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check mobile: %w", err)
	}

	if _, err := s.users.FindByAadhaar(ctx, aadhaar); err == nil {
		return apperr.Conflict("aadhaarNumber", "User already exists with this Aadhaar number")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check aadhaar: %w", err)
	}

	return nil
}

// duplicateKeyConflict recognizes unique-index violations from the driver
// and names the colliding field from the index in the message.
func duplicateKeyConflict(err error) *apperr.ConflictError {
	msg := err.Error()
	if !strings.Contains(msg, "Duplicate entry") && !strings.Contains(msg, "UNIQUE constraint failed") {
		return nil
	}
	switch {
	case strings.Contains(msg, "email"):
		return apperr.Conflict("email", "User already exists with this email address")
	case strings.Contains(msg, "mobile"):
		return apperr.Conflict("mobile", "User already exists with this mobile number")
	case strings.Contains(msg, "aadhaar"):
		return apperr.Conflict("aadhaarNumber", "User already exists with this Aadhaar number")
	case strings.Contains(msg, "pan"):
		return apperr.Conflict("panCard", "User already exists with this PAN card")
	default:
		return apperr.Conflict("", "User already registered")
	}
}
