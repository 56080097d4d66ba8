package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "pushuplog/internal/errors"
	"pushuplog/internal/model"
	"pushuplog/internal/service"
)

// RecordHandler handles record endpoints.
type RecordHandler struct {
	recordService service.RecordService
}

// NewRecordHandler creates a new record handler.
func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// RecordEnvelope wraps a single record fetch.
type RecordEnvelope struct {
	Record *model.Record `json:"record"`
}

// UpdateRecordParams is the body of the update_record method endpoint.
type UpdateRecordParams struct {
	Record *int `json:"record" validate:"required"`
}

// MethodResult is the structured outcome of a method execution.
type MethodResult struct {
	NewValue     int `json:"newValue"`
	AppliedDelta int `json:"appliedDelta"`
}

// MethodResponse reports a method execution.
type MethodResponse struct {
	RecordID uint         `json:"record_id"`
	Method   string       `json:"method"`
	Status   string       `json:"status"`
	Result   MethodResult `json:"result"`
}

// List godoc
// @Summary List records
// @Tags records
// @Produce json
// @Param detailed query bool false "Inline the owning user"
// @Success 200 {array} model.Record
// @Failure 500 {object} errors.ErrorResponse
// @Router /record/ [get]
func (h *RecordHandler) List(c echo.Context) error {
	if boolQuery(c, "detailed") {
		details, err := h.recordService.ListDetailed(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, details)
	}
	records, err := h.recordService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Count godoc
// @Summary Count records
// @Tags records
// @Produce json
// @Success 200 {object} CountResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /record/count/ [get]
func (h *RecordHandler) Count(c echo.Context) error {
	count, err := h.recordService.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, CountResponse{Count: count})
}

// Paginated godoc
// @Summary Paginated record list
// @Tags records
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /record/paginated/ [get]
func (h *RecordHandler) Paginated(c echo.Context) error {
	skip, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	total, records, err := h.recordService.Paginated(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, PaginatedResponse{Total: total, Skip: skip, Limit: limit, Data: records})
}

// Search godoc
// @Summary Search records
// @Description Accepts the search route; no filters are applied yet, all records are returned.
// @Tags records
// @Produce json
// @Success 200 {array} model.Record
// @Failure 500 {object} errors.ErrorResponse
// @Router /record/search/ [get]
func (h *RecordHandler) Search(c echo.Context) error {
	records, err := h.recordService.Search(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Get godoc
// @Summary Get record by id
// @Tags records
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} RecordEnvelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /record/{id}/ [get]
func (h *RecordHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	record, err := h.recordService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, RecordEnvelope{Record: record})
}

// Create godoc
// @Summary Create record
// @Tags records
// @Accept json
// @Produce json
// @Param record body model.RecordCreate true "Record payload"
// @Success 200 {object} model.Record
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /record/ [post]
func (h *RecordHandler) Create(c echo.Context) error {
	var req model.RecordCreate
	if err := c.Bind(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	record, err := h.recordService.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// BulkCreate godoc
// @Summary Create many records, all-or-nothing
// @Tags records
// @Accept json
// @Produce json
// @Param items body []model.RecordCreate true "Record payloads"
// @Success 200 {object} BulkCreateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /record/bulk/ [post]
func (h *RecordHandler) BulkCreate(c echo.Context) error {
	var items []model.RecordCreate
	if err := c.Bind(&items); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	ids, err := h.recordService.BulkCreate(c.Request().Context(), items)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, BulkCreateResponse{
		CreatedCount: len(ids),
		CreatedIDs:   ids,
		Message:      fmt.Sprintf("Successfully created %d Record entities", len(ids)),
	})
}

// BulkDelete godoc
// @Summary Delete many records, partial success reported
// @Tags records
// @Accept json
// @Produce json
// @Param ids body []int true "Record ids"
// @Success 200 {object} BulkDeleteResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /record/bulk/ [delete]
func (h *RecordHandler) BulkDelete(c echo.Context) error {
	var ids []uint
	if err := c.Bind(&ids); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	deleted, notFound, err := h.recordService.BulkDelete(c.Request().Context(), ids)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, BulkDeleteResponse{
		DeletedCount: deleted,
		NotFound:     notFound,
		Message:      fmt.Sprintf("Successfully deleted %d Record entities", deleted),
	})
}

// Update godoc
// @Summary Replace record
// @Tags records
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param record body model.RecordCreate true "Record payload"
// @Success 200 {object} model.Record
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /record/{id}/ [put]
func (h *RecordHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.RecordCreate
	if err := c.Bind(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	record, err := h.recordService.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Delete godoc
// @Summary Delete record
// @Tags records
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} model.Record
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /record/{id}/ [delete]
func (h *RecordHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	record, err := h.recordService.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// ExecuteUpdateRecord godoc
// @Summary Execute the update_record method on a record
// @Description Adds the supplied delta to the record's numberOfPushups.
// @Tags record-methods
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param params body UpdateRecordParams true "Method parameters"
// @Success 200 {object} MethodResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /record/{id}/methods/update_record/ [post]
func (h *RecordHandler) ExecuteUpdateRecord(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var params UpdateRecordParams
	if err := c.Bind(&params); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	if err := c.Validate(&params); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	record, err := h.recordService.ApplyUpdateRecord(c.Request().Context(), id, *params.Record)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MethodResponse{
		RecordID: record.ID,
		Method:   "update_record",
		Status:   "executed",
		Result: MethodResult{
			NewValue:     record.NumberOfPushups,
			AppliedDelta: *params.Record,
		},
	})
}
