package dto

type CreateTableRequest struct {
	PreUserID   uint   `json:"pre_user_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (r CreateTableRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.PreUserID == 0 {
		errors["pre_user_id"] = "PreUser is required"
	}
	if r.Name == "" {
		errors["name"] = "Table name is required"
	}

	return errors
}

type AddColumnRequest struct {
	Name     string `json:"name"`
	Datatype string `json:"datatype,omitempty"`
}

func (r AddColumnRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name == "" {
		errors["name"] = "Column name is required"
	}

	return errors
}

type ColumnDTO struct {
	ID       uint   `json:"id"`
	TableID  uint   `json:"table_id"`
	Name     string `json:"name"`
	Datatype string `json:"datatype"`
}

type TableDTO struct {
	ID          uint        `json:"id"`
	PreUserID   uint        `json:"pre_user_id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Columns     []ColumnDTO `json:"columns,omitempty"`
}
