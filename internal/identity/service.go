package identity

import (
	"context"
	"errors"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/auth"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPreUserNotFound    = errors.New("pre-user not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyLinked      = errors.New("identity already linked")
	ErrNoPreUser          = errors.New("no pre-user linked to account")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Gender   string
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Gender:       input.Gender,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			return ErrDuplicateEmail
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func (s *Service) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfileInput carries a partial profile update; nil fields are left
// untouched.
type UpdateProfileInput struct {
	Name     *string
	Email    *string
	Password *string
	Gender   *string
}

func (s *Service) UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Gender != nil {
			user.Gender = *input.Gender
		}
		if input.Email != nil && *input.Email != user.Email {
			var existing models.User
			err := tx.Where("email = ? AND id <> ?", *input.Email, userID).First(&existing).Error
			if err == nil {
				return ErrDuplicateEmail
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			user.Email = *input.Email
		}
		if input.Password != nil && *input.Password != "" {
			hash, err := auth.HashPassword(*input.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// SetProfileImage records the stored filename for a user's profile image.
func (s *Service) SetProfileImage(ctx context.Context, userID uint, filename string) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_image", filename)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetAdmin toggles the admin flag on a user.
func (s *Service) SetAdmin(ctx context.Context, userID uint, admin bool) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("admin", admin)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListUsers returns all users except the given one (the admin screens exclude
// the acting admin from role toggles).
func (s *Service) ListUsers(ctx context.Context, excludeID uint) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).
		Where("id <> ?", excludeID).
		Order("id").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

type CreatePreUserInput struct {
	Name   string
	Email  string
	Phone  string
	Gender string
}

func (s *Service) CreatePreUser(ctx context.Context, input CreatePreUserInput) (*models.PreUser, error) {
	preUser := models.PreUser{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Gender: input.Gender,
	}
	if err := s.db.WithContext(ctx).Create(&preUser).Error; err != nil {
		return nil, err
	}
	return &preUser, nil
}

func (s *Service) ListPreUsers(ctx context.Context) ([]models.PreUser, error) {
	var preUsers []models.PreUser
	if err := s.db.WithContext(ctx).Order("id").Find(&preUsers).Error; err != nil {
		return nil, err
	}
	return preUsers, nil
}

// Merge links a PreUser stub to a registered User. Re-applying the same pair
// is a no-op success. Linking a PreUser that already points at a different
// user, or a user that already has a linked PreUser, fails with
// ErrAlreadyLinked: each account carries at most one PreUser.
func (s *Service) Merge(ctx context.Context, preUserID, userID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var preUser models.PreUser
		if err := tx.First(&preUser, preUserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPreUserNotFound
			}
			return err
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if preUser.UserID != nil {
			if *preUser.UserID == userID {
				return nil
			}
			return ErrAlreadyLinked
		}

		var linked int64
		if err := tx.Model(&models.PreUser{}).
			Where("user_id = ?", userID).
			Count(&linked).Error; err != nil {
			return err
		}
		if linked > 0 {
			return ErrAlreadyLinked
		}

		// Guarded update so two concurrent merges cannot double-link.
		result := tx.Model(&models.PreUser{}).
			Where("id = ? AND user_id IS NULL", preUserID).
			Update("user_id", userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyLinked
		}
		return nil
	})
}

// ListUnlinkedPreUsers returns PreUsers with no linked account.
func (s *Service) ListUnlinkedPreUsers(ctx context.Context) ([]models.PreUser, error) {
	var preUsers []models.PreUser
	if err := s.db.WithContext(ctx).
		Where("user_id IS NULL").
		Order("id").
		Find(&preUsers).Error; err != nil {
		return nil, err
	}
	return preUsers, nil
}

// ListUnlinkedUsers returns users no PreUser references.
func (s *Service) ListUnlinkedUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).
		Where("id NOT IN (?)", s.db.Model(&models.PreUser{}).
			Select("user_id").
			Where("user_id IS NOT NULL")).
		Order("id").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ActivePreUser resolves the PreUser a user acts as: the earliest linked one.
func (s *Service) ActivePreUser(ctx context.Context, userID uint) (*models.PreUser, error) {
	var preUser models.PreUser
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		First(&preUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPreUser
		}
		return nil, err
	}
	return &preUser, nil
}
