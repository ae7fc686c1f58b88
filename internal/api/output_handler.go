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

//go:generate mockery --name OutputService --output ../mocks
type OutputService interface {
	RecordOutput(ctx context.Context, req dto.RecordOutputRequest) (*domain.GSTR1Output, error)
	List(ctx context.Context) ([]domain.GSTR1Output, error)
	DownloadURL(ctx context.Context, id string) (*dto.DownloadResponse, error)
	StartVerification(ctx context.Context, req dto.StartVerificationRequest) (*domain.VerificationRun, error)
}

type OutputHandler struct {
	*BaseHandler
	service OutputService
}

func NewOutputHandler(service OutputService) *OutputHandler {
	return &OutputHandler{service: service}
}

func (h *OutputHandler) RecordOutput(c *gin.Context) {
	var req dto.RecordOutputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	output, err := h.service.RecordOutput(h.RequestCtx(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, output)
}

func (h *OutputHandler) ListOutputs(c *gin.Context) {
	outputs, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, outputs)
}

func (h *OutputHandler) DownloadOutput(c *gin.Context) {
	resp, err := h.service.DownloadURL(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOutputNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *OutputHandler) StartVerification(c *gin.Context) {
	var req dto.StartVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	run, err := h.service.StartVerification(h.RequestCtx(c), req)
	if err != nil {
		if errors.Is(err, service.ErrOutputNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, run)
}
