package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/gradpoint/gms-api/internal/models"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
)

type userStore interface {
	All() []models.User
	Get(id string) (models.User, bool)
	GetByEmail(email string) (models.User, bool)
	Add(u models.User)
	Update(id string, mutate func(*models.User)) (models.User, bool)
	Filter(pred func(models.User) bool) []models.User
}

// CreateUserRequest holds payload for provisioning operator accounts.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=SUPERADMIN ADMIN OFFICER VIEWER"`
}

// UpdateUserRequest holds payload for editing operator accounts.
type UpdateUserRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=SUPERADMIN ADMIN OFFICER VIEWER"`
	Active   bool   `json:"active"`
}

// UserService handles the admin screen's role and user administration.
type UserService struct {
	users     userStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs the user service.
func NewUserService(users userStore, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{users: users, validator: validate, logger: logger}
}

// List returns users matching the filter. Search covers full name and
// email.
func (s *UserService) List(ctx context.Context, filter models.UserFilter) ([]models.User, *models.Pagination, error) {
	matched := s.users.Filter(func(u models.User) bool {
		if !matchesSearch(filter.Search, u.FullName, u.Email) {
			return false
		}
		if filter.Role != "" && u.Role != filter.Role {
			return false
		}
		if filter.Active != nil && u.Active != *filter.Active {
			return false
		}
		return true
	})
	page, pagination := paginate(matched, filter.Page, filter.PageSize)
	return page, pagination, nil
}

// Create provisions a new operator account.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}
	if _, exists := s.users.GetByEmail(req.Email); exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "email already used")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	now := time.Now().UTC()
	user := models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         models.UserRole(req.Role),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users.Add(user)
	s.logger.Info("user created", zap.String("user_id", user.ID), zap.String("role", req.Role))
	return &user, nil
}

// Update edits an operator account.
func (s *UserService) Update(ctx context.Context, id string, req UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}
	updated, ok := s.users.Update(id, func(u *models.User) {
		u.FullName = req.FullName
		u.Role = models.UserRole(req.Role)
		u.Active = req.Active
	})
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	return &updated, nil
}

// Deactivate marks an account inactive.
func (s *UserService) Deactivate(ctx context.Context, id string) error {
	if _, ok := s.users.Update(id, func(u *models.User) { u.Active = false }); !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	return nil
}
