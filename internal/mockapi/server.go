// Package mockapi is an in-memory storefront backend served over gin. It
// backs local runs of the CLI and the end-to-end tests.
package mockapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Server struct {
	store  *Store
	faults *faults
	log    *slog.Logger
	engine *gin.Engine
}

func New(store *Store, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{store: store, faults: newFaults(), log: log, engine: gin.New()}
	s.engine.Use(gin.Recovery(), s.accessLog())
	s.engine.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	r := s.engine.Group("/api", s.faults.middleware())
	s.catalogRoutes(r)
	s.cartRoutes(r)
	s.orderRoutes(r)
	s.paymentRoutes(r)
	s.accountRoutes(r)
	s.adminRoutes(r)
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) Store() *Store { return s.store }

// FailNext makes the next request on route answer with status and message.
// Routes are written as "METHOD /pattern" with gin parameters and without
// the /api prefix, e.g. "POST /payments/:id/process".
func (s *Server) FailNext(route string, status int, message string) {
	s.faults.add(route, status, message)
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("took", time.Since(start)),
		)
	}
}

func reply(c *gin.Context, status int, v any, err error) {
	if err != nil {
		abort(c, err)
		return
	}
	if v == nil {
		c.Status(status)
		return
	}
	c.JSON(status, v)
}

func abort(c *gin.Context, err error) {
	var e *Error
	if errors.As(err, &e) {
		c.AbortWithStatusJSON(e.Status, gin.H{"message": e.Message})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}

func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return false
	}
	return true
}
