package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/activity"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/mapview"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/models"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/service"
	"github.com/atadurdyyewserdar/portfolio-backend-go/pkg/response"
)

// ViewportWidthHeader is the client hint carrying the layout width
const ViewportWidthHeader = "Sec-CH-Viewport-Width"

var supportedLanguages = language.NewMatcher(activity.Languages)

// PortfolioHandler handles the page and its content endpoints
type PortfolioHandler struct {
	service *service.PortfolioService
	logger  *zap.Logger
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(service *service.PortfolioService, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{service: service, logger: logger}
}

// GetPage handles GET /
func (h *PortfolioHandler) GetPage(c *gin.Context) {
	p, err := h.service.Page(viewportWidth(c), requestLanguage(c))
	if err != nil {
		h.logger.Error("failed to build page", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.Header("Accept-CH", ViewportWidthHeader)
	c.Header("Vary", ViewportWidthHeader)
	c.HTML(http.StatusOK, "index.html", p)
}

// GetProfile handles GET /api/v1/profile
func (h *PortfolioHandler) GetProfile(c *gin.Context) {
	response.Success(c, h.service.Content())
}

// GetActivity handles GET /api/v1/activity
func (h *PortfolioHandler) GetActivity(c *gin.Context) {
	response.Success(c, h.service.Activity(requestLanguage(c)))
}

// GetMap handles GET /api/v1/map
func (h *PortfolioHandler) GetMap(c *gin.Context) {
	response.Success(c, h.service.Map())
}

// Zoom handles POST /api/v1/map/zoom
func (h *PortfolioHandler) Zoom(c *gin.Context) {
	var req models.ZoomRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	resp, err := h.service.Zoom(req)
	if errors.Is(err, mapview.ErrUnknownDirection) {
		response.BadRequest(c, err)
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.Success(c, resp)
}

// viewportWidth reads the layout width from ?w= or the viewport client hint, 0 when absent
func viewportWidth(c *gin.Context) int {
	raw := c.Query("w")
	if raw == "" {
		raw = c.GetHeader(ViewportWidthHeader)
	}
	w, err := strconv.Atoi(raw)
	if err != nil || w < 0 {
		return 0
	}
	return w
}

func requestLanguage(c *gin.Context) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := supportedLanguages.Match(tags...)
	return activity.Languages[idx]
}
