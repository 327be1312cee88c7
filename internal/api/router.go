package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/config"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/flight"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/handler"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/middleware"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/profile"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/service"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/web"
)

// Deps 路由依赖, 测试时可替换
type Deps struct {
	Logger    *zap.Logger
	Clock     flight.Clock
	Portfolio *service.PortfolioService
}

// SetupRouter 设置路由; 返回的 stop 用于释放限流器等后台资源
func SetupRouter(cfg *config.Config, deps Deps) (*gin.Engine, func(), error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Portfolio == nil {
		portfolio, err := service.NewPortfolioService(service.PortfolioOptions{
			Content:        profile.Default(),
			View:           cfg.MapView(),
			Tiles:          cfg.TileLayer(),
			Weeks:          cfg.ActivityWeeks,
			FlightDuration: cfg.FlightDuration,
		})
		if err != nil {
			return nil, nil, err
		}
		deps.Portfolio = portfolio
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(deps.Logger))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	portfolioHandler := handler.NewPortfolioHandler(deps.Portfolio, deps.Logger)
	flightHandler := handler.NewFlightHandler(
		service.NewFlightService(deps.Clock, cfg.FlightDuration, cfg.FrameInterval, cfg.MapView()),
		deps.Logger,
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Portfolio is running",
		})
	})

	// 页面与静态资源
	r.GET("/", portfolioHandler.GetPage)
	r.StaticFS("/static", http.FS(web.Static()))

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	// API 路由组
	api := r.Group("/api/v1", limiter.Middleware())
	{
		api.GET("/profile", portfolioHandler.GetProfile)
		api.GET("/activity", portfolioHandler.GetActivity)

		// 地图
		maps := api.Group("/map")
		{
			maps.GET("", portfolioHandler.GetMap)
			maps.POST("/zoom", portfolioHandler.Zoom)
		}

		// 飞机动画
		flights := api.Group("/flight")
		{
			flights.GET("/path", flightHandler.GetPath)
			flights.GET("/frame", flightHandler.GetFrame)
			flights.GET("/stream", flightHandler.Stream)
		}
	}

	return r, limiter.Stop, nil
}
