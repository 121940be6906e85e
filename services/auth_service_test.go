package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostel-backend/apperr"
	"hostel-backend/models"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByMobile(ctx context.Context, mobile string) (*models.User, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByAadhaar(ctx context.Context, aadhaar string) (*models.User, error) {
	args := m.Called(ctx, aadhaar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListTenants(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdateFieldsByEmail(ctx context.Context, email string, fields map[string]any) (int64, error) {
	args := m.Called(ctx, email, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "Sup3r$ecret",
		Mobile:   "9876543210",
		Aadhaar:  "123456789012",
	}
}

func noUser(repo *MockUserRepository) {
	repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	repo.On("FindByMobile", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	repo.On("FindByAadhaar", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(in *RegisterInput) { in.Name = "" },
			message: "All fields are required (except PAN card which is optional)",
		},
		{
			name:    "missing password",
			mutate:  func(in *RegisterInput) { in.Password = "" },
			message: "All fields are required (except PAN card which is optional)",
		},
		{
			name:    "bad email",
			mutate:  func(in *RegisterInput) { in.Email = "not-an-email" },
			message: "Invalid email format",
		},
		{
			name:    "weak password no symbol",
			mutate:  func(in *RegisterInput) { in.Password = "Password1" },
			message: "Password must be at least 8 characters long and contain uppercase, lowercase, number and special character",
		},
		{
			name:    "weak password too short",
			mutate:  func(in *RegisterInput) { in.Password = "Ab1$" },
			message: "Password must be at least 8 characters long and contain uppercase, lowercase, number and special character",
		},
		{
			name:    "mobile too short",
			mutate:  func(in *RegisterInput) { in.Mobile = "12345" },
			message: "Mobile number must be exactly 10 digits",
		},
		{
			name:    "aadhaar too short",
			mutate:  func(in *RegisterInput) { in.Aadhaar = "1234" },
			message: "Aadhaar number must be exactly 12 digits",
		},
		{
			name:    "bad pan",
			mutate:  func(in *RegisterInput) { in.PANCard = "NOPE" },
			message: "Invalid PAN card format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			svc := NewAuthService(repo, NewTokenService("test-secret"))

			in := validRegisterInput()
			tt.mutate(&in)

			_, err := svc.Register(context.Background(), in)
			require.Error(t, err)

			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.message, ve.Message)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	existing := &models.User{Email: "asha@example.com"}

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "asha@example.com").Return(existing, nil)
		svc := NewAuthService(repo, NewTokenService("test-secret"))

		_, err := svc.Register(context.Background(), validRegisterInput())

		var ce *apperr.ConflictError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "email", ce.Field)
		assert.Equal(t, "User already exists with this email address", ce.Message)
	})

	t.Run("duplicate mobile", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
		repo.On("FindByMobile", mock.Anything, "9876543210").Return(existing, nil)
		svc := NewAuthService(repo, NewTokenService("test-secret"))

		_, err := svc.Register(context.Background(), validRegisterInput())

		var ce *apperr.ConflictError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "mobile", ce.Field)
		assert.Equal(t, "User already exists with this mobile number", ce.Message)
	})

	t.Run("duplicate aadhaar", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
		repo.On("FindByMobile", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
		repo.On("FindByAadhaar", mock.Anything, "123456789012").Return(existing, nil)
		svc := NewAuthService(repo, NewTokenService("test-secret"))

		_, err := svc.Register(context.Background(), validRegisterInput())

		var ce *apperr.ConflictError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "aadhaarNumber", ce.Field)
	})
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := new(MockUserRepository)
	noUser(repo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)
	svc := NewAuthService(repo, NewTokenService("test-secret"))

	in := validRegisterInput()
	in.Mobile = "98-765 43210" // formatting is stripped before validation
	in.PANCard = "abcde1234f"

	user, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "9876543210", user.Mobile)
	assert.Equal(t, "123456789012", user.AadhaarNumber)
	require.NotNil(t, user.PANCard)
	assert.Equal(t, "ABCDE1234F", *user.PANCard)

	// Password stored as a bcrypt hash of the submitted password.
	assert.NotEqual(t, "Sup3r$ecret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Sup3r$ecret")))

	// Booking snapshot starts zeroed.
	assert.Equal(t, "", user.BookedRoomNo)
	assert.Zero(t, user.AmountPaid)
	assert.Zero(t, user.TimePeriod)
	assert.False(t, user.IsAdmin)
	assert.True(t, user.AdminApproval)

	repo.AssertExpectations(t)
}

func TestAuthService_Register_InsertRaceMapsToConflict(t *testing.T) {
	repo := new(MockUserRepository)
	noUser(repo)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(assertableDuplicateErr("Duplicate entry 'asha@example.com' for key 'idx_users_email'"))
	svc := NewAuthService(repo, NewTokenService("test-secret"))

	_, err := svc.Register(context.Background(), validRegisterInput())

	var ce *apperr.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "email", ce.Field)
}

type assertableDuplicateErr string

func (e assertableDuplicateErr) Error() string { return string(e) }

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3r$ecret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	stored := &models.User{
		ID:            7,
		Name:          "Asha Rao",
		Email:         "asha@example.com",
		Password:      string(hash),
		AdminApproval: true,
	}

	tokens := NewTokenService("test-secret")

	t.Run("success issues a valid token", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "asha@example.com").Return(stored, nil)
		svc := NewAuthService(repo, tokens)

		user, token, err := svc.Login(context.Background(), "asha@example.com", "Sup3r$ecret")
		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", user.Email)

		claims, err := tokens.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
		repo.On("FindByEmail", mock.Anything, "asha@example.com").Return(stored, nil)
		svc := NewAuthService(repo, tokens)

		_, _, errUnknown := svc.Login(context.Background(), "nobody@example.com", "Sup3r$ecret")
		_, _, errWrongPass := svc.Login(context.Background(), "asha@example.com", "WrongPass1$")

		assert.ErrorIs(t, errUnknown, apperr.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, apperr.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})

	t.Run("pending approval is rejected", func(t *testing.T) {
		pending := *stored
		pending.AdminApproval = false

		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "asha@example.com").Return(&pending, nil)
		svc := NewAuthService(repo, tokens)

		_, _, err := svc.Login(context.Background(), "asha@example.com", "Sup3r$ecret")
		assert.ErrorIs(t, err, apperr.ErrPendingApproval)
	})

	t.Run("seeded admin logs in through the same path with the role claim", func(t *testing.T) {
		adminHash, err := bcrypt.GenerateFromPassword([]byte("Admin@123"), bcrypt.DefaultCost)
		require.NoError(t, err)
		admin := &models.User{
			ID:            1,
			Email:         "admin@hostel.com",
			Password:      string(adminHash),
			IsAdmin:       true,
			AdminApproval: true,
		}

		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "admin@hostel.com").Return(admin, nil)
		svc := NewAuthService(repo, tokens)

		user, token, err := svc.Login(context.Background(), "admin@hostel.com", "Admin@123")
		require.NoError(t, err)
		assert.True(t, user.IsAdmin)

		claims, err := tokens.Validate(token)
		require.NoError(t, err)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("missing fields", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, tokens)

		_, _, err := svc.Login(context.Background(), "", "")
		var ve *apperr.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}
