package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/musicallyvk/TrackingNumberService/internal/domain"
	"github.com/musicallyvk/TrackingNumberService/internal/generator"
	"github.com/musicallyvk/TrackingNumberService/pkg/log"
	"github.com/musicallyvk/TrackingNumberService/pkg/response"
)

// maxBatchCount caps the number of tracking numbers per request.
const maxBatchCount = 1000

// Handler handles HTTP requests for the tracking-number service.
type Handler struct {
	generator *generator.TrackingGenerator
}

// NewHandler creates a new HTTP handler.
func NewHandler(gen *generator.TrackingGenerator) *Handler {
	return &Handler{generator: gen}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		numbers := api.Group("/tracking-numbers")
		{
			numbers.POST("", h.Generate)
			numbers.POST("/parse", h.Parse)
		}
	}
}

// Generate produces one or more tracking numbers.
func (h *Handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind generate request")
		response.BadRequest(c, err.Error())
		return
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > maxBatchCount {
		response.BadRequest(c, "count must be between 1 and 1000")
		return
	}

	numbers, err := h.generator.GenerateBatch(req.Country, req.LocalAddress, count)
	if err != nil {
		if errors.Is(err, generator.ErrClockBackwards) {
			l.Error().Err(err).Msg("clock moved backwards, refusing to generate")
			response.ServiceUnavailable(c, "clock moved backwards, try again later")
			return
		}
		l.Error().Err(err).Msg("failed to generate tracking numbers")
		response.InternalError(c, "failed to generate tracking numbers")
		return
	}

	response.Created(c, domain.GenerateResponse{TrackingNumbers: numbers})
}

// Parse splits a tracking number into its segments.
func (h *Handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind parse request")
		response.BadRequest(c, err.Error())
		return
	}

	parsed, err := h.generator.Parse(req.TrackingNumber)
	if err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	response.Success(c, parsed)
}
