package export

import (
	"context"
	"sort"
	"time"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database/models"
	"gorm.io/gorm"
)

// Sentinels emitted when a row's references cannot be resolved. A broken
// reference degrades the field, never the row.
const (
	NotAvailable  = "N/A"
	NotRegistered = "Not Registered"
)

// TableGroup is one bucket of contributions sharing a table reference.
// A nil TableID bucket collects unattributed entries.
type TableGroup struct {
	TableID  *uint
	Contents []models.Content
}

// GroupByTable buckets contributions by table_id, preserving the order the
// contributions were fetched in: buckets appear in order of first occurrence
// and each bucket keeps the input order. The input is partitioned completely
// and disjointly.
func GroupByTable(contents []models.Content) []TableGroup {
	index := make(map[uint]int)
	var groups []TableGroup
	nilIndex := -1

	for _, c := range contents {
		if c.TableID == nil {
			if nilIndex < 0 {
				nilIndex = len(groups)
				groups = append(groups, TableGroup{})
			}
			groups[nilIndex].Contents = append(groups[nilIndex].Contents, c)
			continue
		}

		i, ok := index[*c.TableID]
		if !ok {
			i = len(groups)
			index[*c.TableID] = i
			tableID := *c.TableID
			groups = append(groups, TableGroup{TableID: &tableID})
		}
		groups[i].Contents = append(groups[i].Contents, c)
	}

	return groups
}

// DistinctColumns deduplicates the columns referenced by a bucket of
// contributions. Dedup is by column ID and the result is sorted by ID, so
// header order is stable across calls.
func DistinctColumns(contents []models.Content) []models.Column {
	seen := make(map[uint]models.Column)
	for _, c := range contents {
		if c.Column == nil {
			continue
		}
		seen[c.Column.ID] = *c.Column
	}

	columns := make([]models.Column, 0, len(seen))
	for _, col := range seen {
		columns = append(columns, col)
	}
	sort.Slice(columns, func(i, j int) bool { return columns[i].ID < columns[j].ID })
	return columns
}

// Row is one resolved export line. Display fields are denormalized at read
// time; missing references fall back to sentinels.
type Row struct {
	PreUserName string
	UserName    string
	TableName   string
	ColumnName  string
	Value       string
	LoggedAt    string
}

// Filter narrows an export. Each nil field is a no-op; set fields compose
// with AND. StartDate is inclusive from start of day, EndDate includes the
// whole end day (the cut is start of the following day).
type Filter struct {
	PreUserID *uint
	TableID   *uint
	StartDate *time.Time
	EndDate   *time.Time
}

// Engine produces read-only, filtered views over the ledger for download.
type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// ExportFiltered resolves the matching contributions into display rows.
func (e *Engine) ExportFiltered(ctx context.Context, filter Filter) ([]Row, error) {
	query := e.db.WithContext(ctx).
		Preload("PreUser").
		Preload("PreUser.User").
		Preload("Table").
		Preload("Column")

	if filter.PreUserID != nil {
		query = query.Where("pre_user_id = ?", *filter.PreUserID)
	}
	if filter.TableID != nil {
		query = query.Where("table_id = ?", *filter.TableID)
	}
	if filter.StartDate != nil {
		start := startOfDay(*filter.StartDate)
		query = query.Where("created_at >= ?", start)
	}
	if filter.EndDate != nil {
		cut := startOfDay(*filter.EndDate).AddDate(0, 0, 1)
		query = query.Where("created_at < ?", cut)
	}

	var contents []models.Content
	if err := query.Order("id").Find(&contents).Error; err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(contents))
	for _, c := range contents {
		rows = append(rows, resolveRow(c))
	}
	return rows, nil
}

func resolveRow(c models.Content) Row {
	row := Row{
		PreUserName: NotAvailable,
		UserName:    NotRegistered,
		TableName:   NotAvailable,
		ColumnName:  NotAvailable,
		Value:       c.Value,
		LoggedAt:    c.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	if c.PreUser != nil {
		row.PreUserName = c.PreUser.Name
		if c.PreUser.User != nil {
			row.UserName = c.PreUser.User.Name
		}
	}
	if c.Table != nil {
		row.TableName = c.Table.Name
	}
	if c.Column != nil {
		row.ColumnName = c.Column.Name
	}

	return row
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
