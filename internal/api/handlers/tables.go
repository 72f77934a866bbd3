package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/dto"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/middleware"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database/models"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/identity"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/schema"
)

type TableHandler struct {
	schema   *schema.Service
	identity *identity.Service
}

func NewTableHandler(schemaSvc *schema.Service, identitySvc *identity.Service) *TableHandler {
	return &TableHandler{schema: schemaSvc, identity: identitySvc}
}

// ListMine handles GET /api/v1/tables: the tables of the caller's PreUser.
func (h *TableHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	preUser, err := h.identity.ActivePreUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, identity.ErrNoPreUser) {
			writeJSON(w, http.StatusOK, []dto.TableDTO{})
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to resolve pre-user"})
		return
	}

	tables, err := h.schema.ListTablesByPreUser(r.Context(), preUser.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list tables"})
		return
	}

	writeJSON(w, http.StatusOK, tablesToDTO(tables))
}

// ListAll handles GET /api/v1/admin/tables
func (h *TableHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	tables, err := h.schema.ListTables(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list tables"})
		return
	}

	writeJSON(w, http.StatusOK, tablesToDTO(tables))
}

// Create handles POST /api/v1/admin/tables
func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errs})
		return
	}

	table, err := h.schema.CreateTable(r.Context(), schema.CreateTableInput{
		PreUserID:   req.PreUserID,
		Name:        req.Name,
		Description: req.Description,
	})

	if err != nil {
		switch {
		case errors.Is(err, schema.ErrPreUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "PreUser not found"})
		default:
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create table"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, tableToDTO(table))
}

// AddColumn handles POST /api/v1/admin/tables/{id}/columns
func (h *TableHandler) AddColumn(w http.ResponseWriter, r *http.Request) {
	tableID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid table ID"})
		return
	}

	var req dto.AddColumnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errs})
		return
	}

	column, err := h.schema.AddColumn(r.Context(), schema.AddColumnInput{
		TableID:  tableID,
		Name:     req.Name,
		Datatype: models.Datatype(req.Datatype),
	})

	if err != nil {
		switch {
		case errors.Is(err, schema.ErrTableNotFound):
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Table not found"})
		case errors.Is(err, schema.ErrDuplicateColumn):
			writeJSON(w, http.StatusConflict, dto.ErrorResponse{Error: "Column name already exists on table"})
		case errors.Is(err, schema.ErrInvalidDatatype):
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Unrecognized datatype"})
		default:
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to add column"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, columnToDTO(column))
}

// ListColumns handles GET /api/v1/tables/{id}/columns
func (h *TableHandler) ListColumns(w http.ResponseWriter, r *http.Request) {
	tableID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid table ID"})
		return
	}

	columns, err := h.schema.ListColumnsByTable(r.Context(), tableID)
	if err != nil {
		switch {
		case errors.Is(err, schema.ErrTableNotFound):
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Table not found"})
		default:
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list columns"})
		}
		return
	}

	response := make([]dto.ColumnDTO, len(columns))
	for i := range columns {
		response[i] = columnToDTO(&columns[i])
	}
	writeJSON(w, http.StatusOK, response)
}

func tableToDTO(table *models.Table) dto.TableDTO {
	out := dto.TableDTO{
		ID:          table.ID,
		PreUserID:   table.PreUserID,
		Name:        table.Name,
		Description: table.Description,
	}
	for i := range table.Columns {
		out.Columns = append(out.Columns, columnToDTO(&table.Columns[i]))
	}
	return out
}

func tablesToDTO(tables []models.Table) []dto.TableDTO {
	out := make([]dto.TableDTO, len(tables))
	for i := range tables {
		out[i] = tableToDTO(&tables[i])
	}
	return out
}

func columnToDTO(column *models.Column) dto.ColumnDTO {
	return dto.ColumnDTO{
		ID:       column.ID,
		TableID:  column.TableID,
		Name:     column.Name,
		Datatype: string(column.Datatype),
	}
}
