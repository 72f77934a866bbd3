package identity

import (
	"context"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database/models"
)

// Registry defines the identity operations the boundary consumes.
type Registry interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*models.User, error)
	CreatePreUser(ctx context.Context, input CreatePreUserInput) (*models.PreUser, error)
	Merge(ctx context.Context, preUserID, userID uint) error
	ListUnlinkedPreUsers(ctx context.Context) ([]models.PreUser, error)
	ListUnlinkedUsers(ctx context.Context) ([]models.User, error)
	ActivePreUser(ctx context.Context, userID uint) (*models.PreUser, error)
}

// Compile-time interface satisfaction check
var _ Registry = (*Service)(nil)
