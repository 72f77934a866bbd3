package schema

import (
	"context"
	"errors"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database/models"
	"gorm.io/gorm"
)

var (
	ErrTableNotFound   = errors.New("table not found")
	ErrPreUserNotFound = errors.New("pre-user not found")
	ErrDuplicateColumn = errors.New("column name already exists on table")
	ErrInvalidDatatype = errors.New("unrecognized datatype")
)

// Service owns Table and Column definitions. It performs no authorization;
// admin gating is the caller's responsibility.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type CreateTableInput struct {
	PreUserID   uint
	Name        string
	Description string
}

func (s *Service) CreateTable(ctx context.Context, input CreateTableInput) (*models.Table, error) {
	table := models.Table{
		PreUserID:   input.PreUserID,
		Name:        input.Name,
		Description: input.Description,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var preUser models.PreUser
		if err := tx.First(&preUser, input.PreUserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPreUserNotFound
			}
			return err
		}
		return tx.Create(&table).Error
	})
	if err != nil {
		return nil, err
	}

	return &table, nil
}

type AddColumnInput struct {
	TableID  uint
	Name     string
	Datatype models.Datatype
}

// AddColumn appends a column definition to a table. Datatype defaults to
// string when omitted; the name must be unique within the table.
func (s *Service) AddColumn(ctx context.Context, input AddColumnInput) (*models.Column, error) {
	if input.Datatype == "" {
		input.Datatype = models.DatatypeString
	}
	if !input.Datatype.IsValid() {
		return nil, ErrInvalidDatatype
	}

	column := models.Column{
		TableID:  input.TableID,
		Name:     input.Name,
		Datatype: input.Datatype,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, input.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTableNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Column{}).
			Where("table_id = ? AND name = ?", input.TableID, input.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateColumn
		}

		return tx.Create(&column).Error
	})
	if err != nil {
		return nil, err
	}

	return &column, nil
}

// ListColumnsByTable returns a table's columns in creation order.
func (s *Service) ListColumnsByTable(ctx context.Context, tableID uint) ([]models.Column, error) {
	var table models.Table
	if err := s.db.WithContext(ctx).First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	var columns []models.Column
	if err := s.db.WithContext(ctx).
		Where("table_id = ?", tableID).
		Order("id").
		Find(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

func (s *Service) GetTable(ctx context.Context, tableID uint) (*models.Table, error) {
	var table models.Table
	if err := s.db.WithContext(ctx).
		Preload("Columns", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return &table, nil
}

func (s *Service) ListTables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.WithContext(ctx).
		Preload("Columns", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *Service) ListTablesByPreUser(ctx context.Context, preUserID uint) ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.WithContext(ctx).
		Where("pre_user_id = ?", preUserID).
		Preload("Columns", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}
