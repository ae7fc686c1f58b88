package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camate/camate-api/internal/api/dto"
	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/internal/service"
)

//go:generate mockery --name UploadService --output ../mocks
type UploadService interface {
	RequestUpload(ctx context.Context, req dto.RequestUploadRequest) (*dto.RequestUploadResponse, error)
	ConfirmUpload(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Upload, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Upload, error)
	DownloadURL(ctx context.Context, id string) (*dto.DownloadResponse, error)
}

type UploadHandler struct {
	*BaseHandler
	service UploadService
}

func NewUploadHandler(service UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// RequestUpload issues a presigned PUT URL and records the pending upload.
func (h *UploadHandler) RequestUpload(c *gin.Context) {
	var req dto.RequestUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.RequestUpload(h.RequestCtx(c), req)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ConfirmUpload marks an upload as received after the client's PUT succeeded.
func (h *UploadHandler) ConfirmUpload(c *gin.Context) {
	if err := h.service.ConfirmUpload(h.RequestCtx(c), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrUploadNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": domain.UploadStatusReceived})
}

func (h *UploadHandler) ListUploads(c *gin.Context) {
	var (
		uploads []domain.Upload
		err     error
	)

	if customerID := c.Query("customer_id"); customerID != "" {
		uploads, err = h.service.ListByCustomer(h.RequestCtx(c), customerID)
	} else {
		uploads, err = h.service.List(h.RequestCtx(c))
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, uploads)
}

// DownloadUpload returns a short-lived presigned GET URL.
func (h *UploadHandler) DownloadUpload(c *gin.Context) {
	resp, err := h.service.DownloadURL(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUploadNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
