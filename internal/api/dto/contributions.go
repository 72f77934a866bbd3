package dto

type LogContributionRequest struct {
	TableID  uint   `json:"table_id"`
	ColumnID uint   `json:"column_id"`
	Value    string `json:"value"`
}

func (r LogContributionRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.TableID == 0 {
		errors["table_id"] = "Table is required"
	}
	if r.ColumnID == 0 {
		errors["column_id"] = "Column is required"
	}

	return errors
}

// BulkContributionRequest populates every column of a table for one PreUser
// in a single submission. Values is keyed by column ID; columns left out are
// stored as empty strings.
type BulkContributionRequest struct {
	PreUserID uint            `json:"pre_user_id"`
	TableID   uint            `json:"table_id"`
	Values    map[uint]string `json:"values"`
}

func (r BulkContributionRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.PreUserID == 0 {
		errors["pre_user_id"] = "PreUser is required"
	}
	if r.TableID == 0 {
		errors["table_id"] = "Table is required"
	}

	return errors
}

type ContributionDTO struct {
	ID         uint   `json:"id"`
	TableID    *uint  `json:"table_id,omitempty"`
	PreUserID  *uint  `json:"pre_user_id,omitempty"`
	ColumnID   *uint  `json:"column_id,omitempty"`
	ColumnName string `json:"column_name,omitempty"`
	Value      string `json:"value"`
	CreatedAt  string `json:"created_at"`
}

// ContributionGroup is one table's bucket in the grouped contributions view.
type ContributionGroup struct {
	TableID   *uint             `json:"table_id,omitempty"`
	TableName string            `json:"table_name,omitempty"`
	Columns   []ColumnDTO       `json:"columns"`
	Entries   []ContributionDTO `json:"entries"`
}

type ContributionsResponse struct {
	Groups []ContributionGroup `json:"groups"`
	Total  int                 `json:"total"`
}
