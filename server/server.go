// Package server exposes the hand analyzer over HTTP and WebSocket. The
// service is stateless: every request carries a full table snapshot and
// the response is a pure function of it, memoized in a local cache.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"riichi/common/cache"
	"riichi/common/config"
	"riichi/common/log"
)

type Server struct {
	engine *gin.Engine
	server *http.Server
	cache  *cache.GeneralCache
}

func New(cfg config.Configuration, analysisCache *cache.GeneralCache) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s := &Server{
		engine: gin.New(),
		cache:  analysisCache,
	}
	s.engine.Use(gin.Recovery())
	s.engine.Use(requestID())

	api := s.engine.Group("/api/v1")
	api.POST("/analyze", s.handleAnalyze)
	api.GET("/health", s.handleHealth)
	s.engine.GET("/ws", s.handleWebSocket)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: s.engine,
	}
	return s
}

// Handler exposes the routed engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks serving until Shutdown or a listen error.
func (s *Server) Start() error {
	log.Info("analysis server listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// requestID tags every request so log lines can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header("X-Request-Id", id)
		start := time.Now()
		c.Next()
		log.Debug("%s %s %d %s id=%s", c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start), id)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, newResponse(CodeSuccess, MsgSuccess, gin.H{"status": "up"}))
}
