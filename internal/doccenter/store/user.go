package store

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/kart-io/doc-center/internal/model"
	"github.com/kart-io/doc-center/pkg/errors"
)

// UserStore defines user persistence operations.
type UserStore interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// GetByUsername returns the user with the given username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// ExistsByUsername reports whether a user with the username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type users struct {
	db *gorm.DB
}

var _ UserStore = (*users)(nil)

func newUsers(db *gorm.DB) *users {
	return &users{db: db}
}

func (u *users) Create(ctx context.Context, user *model.User) error {
	if err := u.db.WithContext(ctx).Create(user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.ErrUserExists
		}
		return errors.ErrInternal.WithCause(err).WithMessage("failed to create user")
	}
	return nil
}

func (u *users) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := u.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound.WithMessage("user not found")
		}
		return nil, errors.ErrInternal.WithCause(err).WithMessage("failed to get user")
	}
	return &user, nil
}

func (u *users) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := u.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, errors.ErrInternal.WithCause(err).WithMessage("failed to check username")
	}
	return count > 0, nil
}
