package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/avododokhov/numisvault/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

// Pagination describes the page metadata attached to list responses.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// NewPagination computes page metadata for a total row count.
func NewPagination(page, limit int, total int64) *Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

// Response is the standard API envelope: {success, data, pagination, message}
// on success, {success:false, error} on failure.
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// ResponseBuilder builds a response with a fluent interface.
type ResponseBuilder struct {
	Ctx        context.Context
	C          *fiber.Ctx
	Status     int
	Success    bool
	Message    string
	Data       interface{}
	Pagination *Pagination
	Err        *CustomError
}

// Success starts a success response.
func Success(c *fiber.Ctx) *ResponseBuilder {
	return &ResponseBuilder{
		Ctx:     c.UserContext(),
		C:       c,
		Status:  fiber.StatusOK,
		Success: true,
	}
}

// Error starts an error response from a CustomError.
func Error(c *fiber.Ctx, err *CustomError) *ResponseBuilder {
	return &ResponseBuilder{
		Ctx:     c.UserContext(),
		C:       c,
		Status:  err.Code,
		Success: false,
		Err:     err,
	}
}

// WithStatus overrides the HTTP status, e.g. 201 for creations.
func (b *ResponseBuilder) WithStatus(status int) *ResponseBuilder {
	b.Status = status
	return b
}

// WithMessage adds a message to the response.
func (b *ResponseBuilder) WithMessage(msg string) *ResponseBuilder {
	b.Message = msg
	return b
}

// WithData adds data to the response.
func (b *ResponseBuilder) WithData(data interface{}) *ResponseBuilder {
	b.Data = data
	return b
}

// WithPagination adds page metadata to the response.
func (b *ResponseBuilder) WithPagination(p *Pagination) *ResponseBuilder {
	b.Pagination = p
	return b
}

// Send writes the response and logs it.
func (b *ResponseBuilder) Send() error {
	resp := Response{
		Success:    b.Success,
		Data:       b.Data,
		Pagination: b.Pagination,
		Message:    b.Message,
	}
	if b.Err != nil {
		resp.Error = b.Err.Message
	}

	if log, ok := b.C.Locals("logger").(*logger.Logger); ok {
		meta := map[string]string{
			"status":  fmt.Sprintf("%d", b.Status),
			"path":    b.C.Path(),
			"method":  b.C.Method(),
			"latency": time.Since(b.C.Context().Time()).String(),
		}
		if b.Success {
			log.Info(b.Ctx).WithMeta(meta).Logs("Response sent")
		} else {
			if b.Err.Details != "" {
				meta["details"] = b.Err.Details
			}
			log.Error(b.Ctx).WithMeta(meta).Logs(fmt.Sprintf("Error response sent: %s", b.Err.Error()))
		}
	}

	return b.C.Status(b.Status).JSON(resp)
}

// SendError translates any error into the standard error envelope.
func SendError(c *fiber.Ctx, err error) error {
	var appErr *CustomError
	if !As(err, &appErr) {
		appErr = StorageError(err)
	}
	return Error(c, appErr).Send()
}

// SendSuccess sends data in the standard success envelope.
func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return Success(c).WithData(data).Send()
}
