package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	appshop "github.com/petshop/backend/internal/application/shop"
	"github.com/petshop/backend/internal/domain/shared"
	"github.com/petshop/backend/internal/infrastructure/logger"
	"github.com/petshop/backend/internal/interfaces/http/dto"
	"github.com/petshop/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response with the standard envelope
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 response with the standard envelope
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 invalid-request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeInvalidRequest, message))
}

// BindError sends a 400 for a failed binding. Validation failures and typed
// JSON errors carry a per-field details map; the raw error text never
// reaches the wire.
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrCodeInvalidRequest, "Request validation failed", details))
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		details := map[string]string{
			typeErr.Field: "must be of type " + typeErr.Type.String(),
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrCodeInvalidRequest, "Request validation failed", details))
		return
	}

	h.BadRequest(c, "Request body could not be parsed")
}

// validationMessage renders one validator rule violation for the details map
func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fieldErr.Param()
	case "max":
		return "cannot exceed " + fieldErr.Param()
	case "iana_tz":
		return "must be a valid IANA zone identifier"
	default:
		return "is invalid"
	}
}

// HandleDomainError converts domain errors into HTTP responses via the
// code map; anything else becomes an opaque 500.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.HTTPStatus(domainErr.Code), dto.NewErrorResponse(domainErr.Code, domainErr.Message))
		return
	}

	logger.GetGinLogger(c).Error("Unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError,
		dto.NewErrorResponse(dto.ErrCodeInternal, "An unexpected error occurred"))
}

// access returns the caller's access context resolved by the auth middleware
func access(c *gin.Context) shared.AccessContext {
	return middleware.GetAccessContext(c)
}

// parseUUIDParam parses a UUID path parameter, replying 400 on failure
func (h *BaseHandler) parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, "Invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}

// bindPage binds the pagination query parameters, replying 400 on failure
func (h *BaseHandler) bindPage(c *gin.Context) (appshop.PageRequest, bool) {
	var page appshop.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.BadRequest(c, "Invalid pagination parameters")
		return page, false
	}
	return page, true
}

// requestURL reconstructs the absolute URL of the request for pagination
// links, honoring a proxy-forwarded scheme
func requestURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if forwarded := c.GetHeader("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.Path
}

// streamNDJSON runs the given producer and commits the response lazily.
// An error before the first byte still becomes a regular error response;
// after the first byte the status line is gone, so it is only logged.
func (h *BaseHandler) streamNDJSON(c *gin.Context, produce func() error) {
	c.Header("Content-Type", "application/x-ndjson")

	if err := produce(); err != nil {
		if !c.Writer.Written() {
			c.Writer.Header().Del("Content-Type")
			h.HandleDomainError(c, err)
			return
		}
		logger.GetGinLogger(c).Error("Streaming aborted", zap.Error(err))
		c.Abort()
		return
	}

	c.Status(http.StatusOK)
}

// head answers a HEAD existence probe with 200 or 404 and no body
func (h *BaseHandler) head(c *gin.Context, exists bool, err error) {
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			c.Status(dto.HTTPStatus(domainErr.Code))
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	if !exists {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusOK)
}
