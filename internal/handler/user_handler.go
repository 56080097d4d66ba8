package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "pushuplog/internal/errors"
	"pushuplog/internal/model"
	"pushuplog/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param detailed query bool false "Inline each user's records"
// @Success 200 {array} model.User
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/ [get]
func (h *UserHandler) List(c echo.Context) error {
	if boolQuery(c, "detailed") {
		details, err := h.userService.ListDetailed(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, details)
	}
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Count godoc
// @Summary Count users
// @Tags users
// @Produce json
// @Success 200 {object} CountResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/count/ [get]
func (h *UserHandler) Count(c echo.Context) error {
	count, err := h.userService.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, CountResponse{Count: count})
}

// Paginated godoc
// @Summary Paginated user list
// @Description Detailed mode inlines owned record ids only, not full records.
// @Tags users
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Param detailed query bool false "Inline owned record ids"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/paginated/ [get]
func (h *UserHandler) Paginated(c echo.Context) error {
	skip, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if boolQuery(c, "detailed") {
		total, items, err := h.userService.PaginatedDetailed(ctx, skip, limit)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, PaginatedResponse{Total: total, Skip: skip, Limit: limit, Data: items})
	}
	total, users, err := h.userService.Paginated(ctx, skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, PaginatedResponse{Total: total, Skip: skip, Limit: limit, Data: users})
}

// Search godoc
// @Summary Search users
// @Description Accepts the search route; no filters are applied yet, all users are returned.
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/search/ [get]
func (h *UserHandler) Search(c echo.Context) error {
	users, err := h.userService.Search(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.UserWithRecordIDs
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/{id}/ [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create godoc
// @Summary Create user
// @Description A supplied hasRecords list repoints those records to the new user.
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.UserCreate true "User payload"
// @Success 200 {object} model.UserWithRecordIDs
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/ [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req model.UserCreate
	if err := c.Bind(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	user, err := h.userService.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// BulkCreate godoc
// @Summary Create many users, all-or-nothing
// @Tags users
// @Accept json
// @Produce json
// @Param items body []model.UserCreate true "User payloads"
// @Success 200 {object} BulkCreateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/bulk/ [post]
func (h *UserHandler) BulkCreate(c echo.Context) error {
	var items []model.UserCreate
	if err := c.Bind(&items); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	ids, err := h.userService.BulkCreate(c.Request().Context(), items)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, BulkCreateResponse{
		CreatedCount: len(ids),
		CreatedIDs:   ids,
		Message:      fmt.Sprintf("Successfully created %d User entities", len(ids)),
	})
}

// BulkDelete godoc
// @Summary Delete many users, partial success reported
// @Tags users
// @Accept json
// @Produce json
// @Param ids body []int true "User ids"
// @Success 200 {object} BulkDeleteResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/bulk/ [delete]
func (h *UserHandler) BulkDelete(c echo.Context) error {
	var ids []uint
	if err := c.Bind(&ids); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	deleted, notFound, err := h.userService.BulkDelete(c.Request().Context(), ids)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, BulkDeleteResponse{
		DeletedCount: deleted,
		NotFound:     notFound,
		Message:      fmt.Sprintf("Successfully deleted %d User entities", deleted),
	})
}

// Update godoc
// @Summary Replace user
// @Description A provided hasRecords list, even empty, replaces the relationship set in full.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body model.UserCreate true "User payload"
// @Success 200 {object} model.UserWithRecordIDs
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/{id}/ [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UserCreate
	if err := c.Bind(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	user, err := h.userService.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete user
// @Description Owned records are detached, not deleted.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/{id}/ [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.userService.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
