package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/dto"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/middleware"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database/models"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/export"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/identity"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/ledger"
)

type ContributionHandler struct {
	ledger   *ledger.Service
	identity *identity.Service
}

func NewContributionHandler(ledgerSvc *ledger.Service, identitySvc *identity.Service) *ContributionHandler {
	return &ContributionHandler{ledger: ledgerSvc, identity: identitySvc}
}

// Log handles POST /api/v1/contributions: a single self-service entry
// against the caller's own PreUser.
func (h *ContributionHandler) Log(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	preUser, err := h.identity.ActivePreUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, identity.ErrNoPreUser) {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "No PreUser linked to your account"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to resolve pre-user"})
		return
	}

	var req dto.LogContributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errs})
		return
	}

	content, err := h.ledger.Log(r.Context(), ledger.LogInput{
		PreUserID: preUser.ID,
		TableID:   req.TableID,
		ColumnID:  req.ColumnID,
		Value:     req.Value,
	})

	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, contributionToDTO(content))
}

// LogBulk handles POST /api/v1/admin/contributions/bulk: one entry per column
// of the table on behalf of any PreUser, all-or-nothing.
func (h *ContributionHandler) LogBulk(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkContributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errs})
		return
	}

	contents, err := h.ledger.LogBulk(r.Context(), req.PreUserID, req.TableID, req.Values)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	response := make([]dto.ContributionDTO, len(contents))
	for i := range contents {
		response[i] = contributionToDTO(&contents[i])
	}
	writeJSON(w, http.StatusCreated, response)
}

// List handles GET /api/v1/contributions: the grouped view, newest first.
// Admin callers see every PreUser's entries.
func (h *ContributionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	admin := middleware.IsAdmin(r.Context())

	filter := ledger.Filter{Admin: admin}
	if !admin {
		preUser, err := h.identity.ActivePreUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, identity.ErrNoPreUser) {
				writeJSON(w, http.StatusOK, dto.ContributionsResponse{Groups: []dto.ContributionGroup{}})
				return
			}
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to resolve pre-user"})
			return
		}
		filter.PreUserID = &preUser.ID
	}

	contents, err := h.ledger.List(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list contributions"})
		return
	}

	writeJSON(w, http.StatusOK, groupContributions(contents))
}

// groupContributions buckets ledger entries per table and resolves the
// deduplicated column headers for each bucket.
func groupContributions(contents []models.Content) dto.ContributionsResponse {
	groups := export.GroupByTable(contents)

	resp := dto.ContributionsResponse{
		Groups: make([]dto.ContributionGroup, 0, len(groups)),
		Total:  len(contents),
	}

	for _, g := range groups {
		group := dto.ContributionGroup{
			TableID: g.TableID,
			Columns: []dto.ColumnDTO{},
		}
		if len(g.Contents) > 0 && g.Contents[0].Table != nil {
			group.TableName = g.Contents[0].Table.Name
		}
		for _, col := range export.DistinctColumns(g.Contents) {
			c := col
			group.Columns = append(group.Columns, columnToDTO(&c))
		}
		for i := range g.Contents {
			group.Entries = append(group.Entries, contributionToDTO(&g.Contents[i]))
		}
		resp.Groups = append(resp.Groups, group)
	}

	return resp
}

func contributionToDTO(content *models.Content) dto.ContributionDTO {
	out := dto.ContributionDTO{
		ID:        content.ID,
		TableID:   content.TableID,
		PreUserID: content.PreUserID,
		ColumnID:  content.ColumnID,
		Value:     content.Value,
		CreatedAt: content.CreatedAt.Format(time.RFC3339),
	}
	if content.Column != nil {
		out.ColumnName = content.Column.Name
	}
	return out
}

func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrPreUserNotFound),
		errors.Is(err, ledger.ErrTableNotFound),
		errors.Is(err, ledger.ErrColumnNotFound):
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ledger.ErrColumnMismatch),
		errors.Is(err, ledger.ErrNotTableOwner),
		errors.Is(err, ledger.ErrInvalidValue):
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to log contribution"})
	}
}
