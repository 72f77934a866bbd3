package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database/models"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/schema"
	"gorm.io/gorm"
)

var (
	ErrPreUserNotFound = errors.New("pre-user not found")
	ErrTableNotFound   = errors.New("table not found")
	ErrColumnNotFound  = errors.New("column not found")
	ErrColumnMismatch  = errors.New("column does not belong to table")
	ErrNotTableOwner   = errors.New("table does not belong to pre-user")
	ErrInvalidValue    = errors.New("value does not match column datatype")
)

// Service owns the append-only contribution ledger. Entries are immutable
// once written; there is no update or delete path.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type LogInput struct {
	PreUserID uint
	TableID   uint
	ColumnID  uint
	Value     string
}

// Log appends a single contribution. The column must belong to the table and
// the table to the pre-user.
func (s *Service) Log(ctx context.Context, input LogInput) (*models.Content, error) {
	var content models.Content

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		table, err := resolveTarget(tx, input.PreUserID, input.TableID)
		if err != nil {
			return err
		}

		var column models.Column
		if err := tx.First(&column, input.ColumnID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrColumnNotFound
			}
			return err
		}
		if column.TableID != table.ID {
			return ErrColumnMismatch
		}

		if err := schema.CoerceValue(column.Datatype, input.Value); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}

		content = models.Content{
			PreUserID: &input.PreUserID,
			TableID:   &input.TableID,
			ColumnID:  &input.ColumnID,
			Value:     input.Value,
		}
		return tx.Create(&content).Error
	})
	if err != nil {
		return nil, err
	}

	return &content, nil
}

// LogBulk appends one contribution per column of the table in a single
// transaction: either every column's entry lands or none do. Columns absent
// from values are stored as empty strings.
func (s *Service) LogBulk(ctx context.Context, preUserID, tableID uint, values map[uint]string) ([]models.Content, error) {
	var contents []models.Content

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var preUser models.PreUser
		if err := tx.First(&preUser, preUserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPreUserNotFound
			}
			return err
		}

		var table models.Table
		if err := tx.First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTableNotFound
			}
			return err
		}

		var columns []models.Column
		if err := tx.Where("table_id = ?", tableID).Order("id").Find(&columns).Error; err != nil {
			return err
		}

		for _, column := range columns {
			value := values[column.ID]
			if err := schema.CoerceValue(column.Datatype, value); err != nil {
				return fmt.Errorf("column %q: %w: %v", column.Name, ErrInvalidValue, err)
			}

			columnID := column.ID
			contents = append(contents, models.Content{
				PreUserID: &preUserID,
				TableID:   &tableID,
				ColumnID:  &columnID,
				Value:     value,
			})
		}

		if len(contents) == 0 {
			return nil
		}
		return tx.Create(&contents).Error
	})
	if err != nil {
		return nil, err
	}

	return contents, nil
}

// Filter scopes a ledger read. Admin callers see everything; everyone else is
// pinned to their own pre-user.
type Filter struct {
	PreUserID *uint
	Admin     bool
}

// List returns contributions newest first, ties broken by insertion order.
func (s *Service) List(ctx context.Context, filter Filter) ([]models.Content, error) {
	query := s.db.WithContext(ctx).
		Preload("Column").
		Preload("Table").
		Preload("PreUser")

	if !filter.Admin {
		if filter.PreUserID == nil {
			return nil, ErrPreUserNotFound
		}
		query = query.Where("pre_user_id = ?", *filter.PreUserID)
	} else if filter.PreUserID != nil {
		query = query.Where("pre_user_id = ?", *filter.PreUserID)
	}

	var contents []models.Content
	if err := query.
		Order("created_at DESC, id DESC").
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// resolveTarget loads the table and checks it belongs to the pre-user.
func resolveTarget(tx *gorm.DB, preUserID, tableID uint) (*models.Table, error) {
	var preUser models.PreUser
	if err := tx.First(&preUser, preUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreUserNotFound
		}
		return nil, err
	}

	var table models.Table
	if err := tx.First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	if table.PreUserID != preUserID {
		return nil, ErrNotTableOwner
	}

	return &table, nil
}
