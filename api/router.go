// Package api wires gridpath controllers into a gin HTTP server.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/api/i"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	metrics     http.Handler
	logger      *slog.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
	Metrics     http.Handler // Served at GET /metrics when non-nil
	Logger      *slog.Logger // Request logs; defaults to slog.Default()
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		metrics:     config.Metrics,
		logger:      logger,
	}
}

// Handler builds the gin engine. Controllers are mounted under
// {baseURL}/v1; the metrics handler, if any, at /metrics.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), r.requestLogger())

	if r.metrics != nil {
		router.GET("/metrics", gin.WrapH(r.metrics))
	}

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}

	return router
}

// Server returns an http.Server bound to the configured address.
func (r *Router) Server() *http.Server {
	return &http.Server{
		Addr:              r.addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// requestLogger logs one http_request record per request.
func (r *Router) requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		level := slog.LevelInfo
		if ctx.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		r.logger.Log(ctx.Request.Context(), level, "http_request",
			slog.String("method", ctx.Request.Method),
			slog.String("route", ctx.FullPath()),
			slog.Int("status", ctx.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
