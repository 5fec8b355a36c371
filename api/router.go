package api

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saes/study-app/services/study_service"
)

// MaxBodyBytes leaves room for base64 overhead over the decoded image limit.
const MaxBodyBytes = 8 << 20

type RouterConfig struct {
	AllowedOrigins []string
}

func NewRouter(svc *study_service.Service, cfg RouterConfig, logger *zap.Logger) (*gin.Engine, error) {
	h, err := NewHandler(svc, logger)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), accessLog(logger), limitBody(MaxBodyBytes))

	config := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = cfg.AllowedOrigins
	}
	config.AllowHeaders = append(config.AllowHeaders, SurfaceHeader)
	config.ExposeHeaders = append(config.ExposeHeaders, SurfaceHeader)
	r.Use(cors.New(config))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	g := r.Group("/api")
	g.GET("/modes", h.Modes)
	g.GET("/chat", h.Welcome)
	g.POST("/chat", h.Chat)
	g.DELETE("/chat", h.ResetChat)
	g.POST("/homework", h.Homework)
	g.POST("/images/generate", h.GenerateImage)
	g.POST("/images/edit", h.EditImage)
	return r, nil
}

func accessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("surface", c.Writer.Header().Get(SurfaceHeader)),
		)
	}
}

func limitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
