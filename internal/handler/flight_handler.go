package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/flight"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/middleware"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/models"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/service"
	"github.com/atadurdyyewserdar/portfolio-backend-go/pkg/response"
)

// FlightHandler handles HTTP requests for the plane marker
type FlightHandler struct {
	service *service.FlightService
	logger  *zap.Logger
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(service *service.FlightService, logger *zap.Logger) *FlightHandler {
	return &FlightHandler{service: service, logger: logger}
}

// GetPath handles GET /api/v1/flight/path
func (h *FlightHandler) GetPath(c *gin.Context) {
	var q models.BoundsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err)
		return
	}

	resp, err := h.service.Path(q)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, resp)
}

// GetFrame handles GET /api/v1/flight/frame
func (h *FlightHandler) GetFrame(c *gin.Context) {
	var q models.FrameQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err)
		return
	}

	frame, err := h.service.Frame(q)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, frame)
}

// Stream handles GET /api/v1/flight/stream.
// Frames are pushed as "frame" server-sent events until the client goes away.
func (h *FlightHandler) Stream(c *gin.Context) {
	var q models.BoundsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err)
		return
	}
	if _, err := h.service.Bounds(q); err != nil {
		h.fail(c, err)
		return
	}

	streamID := uuid.NewString()
	logger := h.logger.With(
		zap.String("stream_id", streamID),
		zap.String("request_id", middleware.GetRequestID(c)),
	)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	logger.Debug("flight stream opened")

	frames := make(chan flight.Frame)
	done := make(chan error, 1)
	ctx := c.Request.Context()

	go func() {
		done <- h.service.Stream(ctx, q, func(f flight.Frame) bool {
			select {
			case frames <- f:
				return true
			case <-ctx.Done():
				return false
			}
		})
		close(frames)
	}()

	c.Stream(func(w io.Writer) bool {
		f, ok := <-frames
		if !ok {
			return false
		}
		c.SSEvent("frame", f)
		return true
	})

	if err := <-done; err != nil && !errors.Is(err, ctx.Err()) {
		logger.Warn("flight stream ended with error", zap.Error(err))
		return
	}
	logger.Debug("flight stream closed")
}

func (h *FlightHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, flight.ErrInvalidBounds) {
		response.BadRequest(c, err)
		return
	}
	response.InternalError(c, err)
}
