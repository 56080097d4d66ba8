package router

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pushuplog/internal/errors"
	"pushuplog/internal/handler"
	"pushuplog/internal/logger"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	systemHandler *handler.SystemHandler,
	recordHandler *handler.RecordHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/", systemHandler.Root)
	e.GET("/health", systemHandler.Health)
	e.GET("/statistics", systemHandler.Statistics)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	record := e.Group("/record")
	record.GET("/", recordHandler.List)
	record.GET("/count/", recordHandler.Count)
	record.GET("/paginated/", recordHandler.Paginated)
	record.GET("/search/", recordHandler.Search)
	record.GET("/:id/", recordHandler.Get)
	record.POST("/", recordHandler.Create)
	record.POST("/bulk/", recordHandler.BulkCreate)
	record.DELETE("/bulk/", recordHandler.BulkDelete)
	record.PUT("/:id/", recordHandler.Update)
	record.DELETE("/:id/", recordHandler.Delete)
	record.POST("/:id/methods/update_record/", recordHandler.ExecuteUpdateRecord)

	user := e.Group("/user")
	user.GET("/", userHandler.List)
	user.GET("/count/", userHandler.Count)
	user.GET("/paginated/", userHandler.Paginated)
	user.GET("/search/", userHandler.Search)
	user.GET("/:id/", userHandler.Get)
	user.POST("/", userHandler.Create)
	user.POST("/bulk/", userHandler.BulkCreate)
	user.DELETE("/bulk/", userHandler.BulkDelete)
	user.PUT("/:id/", userHandler.Update)
	user.DELETE("/:id/", userHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// HTTPErrorHandler turns any error escaping a handler into the uniform
// {error, message, detail} envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		status int
		body   errors.ErrorResponse
	)
	if he, ok := err.(*echo.HTTPError); ok {
		// Routing and binding errors raised by echo itself.
		msg := fmt.Sprintf("%v", he.Message)
		status = he.Code
		body = errors.ErrorResponse{
			Error:   msg,
			Message: msg,
			Detail:  fmt.Sprintf("HTTP %d error occurred", he.Code),
		}
	} else {
		status, body = errors.MapErrorToHTTP(err)
	}

	if status >= http.StatusInternalServerError {
		logger.Log.Errorw("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, body)
}
