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

// UserService covers profile reads, self updates and the admin user surface.
type UserService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Detail returns the full user record for the given email.
func (s *UserService) Detail(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperr.Validation("email", "Email is required")
	}
	if !isEmail(email) {
		return nil, apperr.Validation("email", "Invalid email format")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// SelfUpdateInput is the profile patch a user may apply to their own record.
type SelfUpdateInput struct {
	Name         string
	Mobile       string
	BookedRoomNo *string
}

// SelfUpdate patches name/mobile (and, as in the original profile screen,
// the booked room number) on the record keyed by email.
func (s *UserService) SelfUpdate(ctx context.Context, email string, in SelfUpdateInput) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperr.Validation("email", "Email is required")
	}

	fields := map[string]any{}
	if name := strings.TrimSpace(in.Name); name != "" {
		fields["name"] = name
	}
	if in.Mobile != "" {
		mobile := stripNonDigits(in.Mobile)
		if len(mobile) != 10 {
			return apperr.Validation("mobile", "Mobile number must be exactly 10 digits")
		}
		fields["mobile"] = mobile
	}
	if in.BookedRoomNo != nil {
		fields["booked_room_no"] = strings.TrimSpace(*in.BookedRoomNo)
	}
	if len(fields) == 0 {
		return apperr.Validation("", "Nothing to update")
	}

	affected, err := s.users.UpdateFieldsByEmail(ctx, email, fields)
	if err != nil {
		if conflict := duplicateKeyConflict(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("update user: %w", err)
	}
	if affected == 0 {
		return apperr.ErrUserNotFound
	}
	return nil
}

// ListTenants returns every non-admin account for the admin screen.
func (s *UserService) ListTenants(ctx context.Context) ([]models.User, error) {
	return s.users.ListTenants(ctx)
}

// AdminUpdate patches a user by id. A password in the patch is re-hashed
// before it is stored; protected fields are dropped.
func (s *UserService) AdminUpdate(ctx context.Context, id uint, patch map[string]any) (*models.User, error) {
	fields, err := userPatchFields(patch)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, apperr.Validation("", "Nothing to update")
	}

	affected, err := s.users.UpdateFields(ctx, id, fields)
	if err != nil {
		if conflict := duplicateKeyConflict(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if affected == 0 {
		// MySQL reports zero affected rows when the patch matches the current
		// values, so confirm the id before treating zero as not found.
		if _, err := s.users.FindByID(ctx, id); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
	}

	return s.users.FindByID(ctx, id)
}

// AdminDelete removes a user permanently.
func (s *UserService) AdminDelete(ctx context.Context, id uint) error {
	affected, err := s.users.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return apperr.ErrUserNotFound
	}
	return nil
}

func userPatchFields(patch map[string]any) (map[string]any, error) {
	delete(patch, "id")
	delete(patch, "created_at")
	delete(patch, "updated_at")
	delete(patch, "isAdmin") // the admin flag is seeded, never patched

	fields := map[string]any{}

	if v, ok := patch["name"]; ok {
		fields["name"] = strings.TrimSpace(fmt.Sprintf("%v", v))
	}
	if v, ok := patch["email"]; ok {
		email := strings.TrimSpace(fmt.Sprintf("%v", v))
		if !isEmail(email) {
			return nil, apperr.Validation("email", "Invalid email format")
		}
		fields["email"] = email
	}
	if v, ok := patch["mobile"]; ok {
		mobile := stripNonDigits(fmt.Sprintf("%v", v))
		if len(mobile) != 10 {
			return nil, apperr.Validation("mobile", "Mobile number must be exactly 10 digits")
		}
		fields["mobile"] = mobile
	}
	if v, ok := patch["password"]; ok {
		password := fmt.Sprintf("%v", v)
		if !isStrongPassword(password) {
			return nil, apperr.Validation("password", "Password must be at least 8 characters long and contain uppercase, lowercase, number and special character")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		fields["password"] = string(hash)
	}
	if v, ok := patch["adminApproval"]; ok {
		if b, isBool := v.(bool); isBool {
			fields["admin_approval"] = b
		}
	}
	if v, ok := patch["active"]; ok {
		if b, isBool := v.(bool); isBool {
			fields["active"] = b
		}
	}
	if v, ok := patch["bookedRoomNo"]; ok {
		fields["booked_room_no"] = strings.TrimSpace(fmt.Sprintf("%v", v))
	}
	if v, ok := patch["amountPaid"]; ok {
		amount, err := toFloat(v)
		if err != nil || amount < 0 {
			return nil, apperr.Validation("amountPaid", "Amount must be a non-negative number")
		}
		fields["amount_paid"] = amount
	}
	if v, ok := patch["timePeriod"]; ok {
		months, err := toInt(v)
		if err != nil || months < 0 || months > 12 {
			return nil, apperr.Validation("timePeriod", "Time period must be between 0 and 12 months")
		}
		fields["time_period"] = months
	}

	return fields, nil
}
