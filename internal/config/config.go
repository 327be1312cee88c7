package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/mapview"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/spatial"
)

// Config 应用配置
type Config struct {
	Port     string `env:"PORT" envDefault:":8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// 地图
	MapCenterLat   float64  `env:"MAP_CENTER_LAT" envDefault:"47.4979"`
	MapCenterLng   float64  `env:"MAP_CENTER_LNG" envDefault:"19.0402"`
	MapZoom        int      `env:"MAP_ZOOM" envDefault:"12"`
	MapMinZoom     int      `env:"MAP_MIN_ZOOM" envDefault:"0"`
	MapMaxZoom     int      `env:"MAP_MAX_ZOOM" envDefault:"18"`
	MapWidth       int      `env:"MAP_WIDTH" envDefault:"560"`
	MapHeight      int      `env:"MAP_HEIGHT" envDefault:"390"`
	TileURL        string   `env:"TILE_URL" envDefault:"https://{s}.basemaps.cartocdn.com/rastertiles/voyager/{z}/{x}/{y}{r}.png"`
	TileSubdomains []string `env:"TILE_SUBDOMAINS" envSeparator:"," envDefault:"a,b,c,d"`

	// 动画
	FlightDuration time.Duration `env:"FLIGHT_DURATION" envDefault:"10s"`
	FrameInterval  time.Duration `env:"FRAME_INTERVAL" envDefault:"50ms"`
	ActivityWeeks  int           `env:"ACTIVITY_WEEKS" envDefault:"12"`

	// 限流
	RateLimit  int           `env:"RATE_LIMIT" envDefault:"120"`
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
}

// Load 加载配置: 先读取可选的 .env 文件, 再解析环境变量
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE must be one of debug, release, test, got %q", c.GinMode)
	}
	if c.MapMinZoom < 0 {
		return fmt.Errorf("MAP_MIN_ZOOM must not be negative, got %d", c.MapMinZoom)
	}
	if c.MapMinZoom > c.MapMaxZoom {
		return fmt.Errorf("MAP_MIN_ZOOM (%d) must not exceed MAP_MAX_ZOOM (%d)", c.MapMinZoom, c.MapMaxZoom)
	}
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		return fmt.Errorf("map size must be positive, got %dx%d", c.MapWidth, c.MapHeight)
	}
	if c.FlightDuration <= 0 {
		return fmt.Errorf("FLIGHT_DURATION must be positive, got %s", c.FlightDuration)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("FRAME_INTERVAL must be positive, got %s", c.FrameInterval)
	}
	if c.ActivityWeeks <= 0 {
		return fmt.Errorf("ACTIVITY_WEEKS must be positive, got %d", c.ActivityWeeks)
	}
	if c.RateLimit <= 0 || c.RateWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT and RATE_WINDOW must be positive")
	}
	return nil
}

// MapView 根据配置构建地图初始视图
func (c *Config) MapView() mapview.View {
	v := mapview.View{
		Center:  spatial.LatLng{Lat: c.MapCenterLat, Lng: c.MapCenterLng},
		MinZoom: c.MapMinZoom,
		MaxZoom: c.MapMaxZoom,
		Width:   c.MapWidth,
		Height:  c.MapHeight,
	}
	v.SetZoom(c.MapZoom)
	return v
}

// TileLayer 根据配置构建瓦片图层
func (c *Config) TileLayer() mapview.TileLayer {
	return mapview.TileLayer{
		Template:   c.TileURL,
		Subdomains: c.TileSubdomains,
	}
}
