// Package api exposes the study service over a localhost HTTP API for the
// browser extension.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seekayel/habla-espanol-ext/internal/database"
	"github.com/seekayel/habla-espanol-ext/internal/study"
	"github.com/seekayel/habla-espanol-ext/pkg/models"
)

// StudyService is the service surface the handlers call. *study.Service
// implements it; tests substitute a fake.
type StudyService interface {
	NextPhrase(ctx context.Context) (*models.Phrase, error)
	SubmitReview(ctx context.Context, phraseID int, answer string, skipped bool, sessionID string) (*study.ReviewResult, error)
	Check(ctx context.Context, phraseID int, answer string) (*study.CheckResult, error)
	Stats(ctx context.Context) (*models.StudyStats, error)
	ListPhrases(ctx context.Context, category string) ([]models.Phrase, error)
	StartSession(ctx context.Context) (*models.StudySession, error)
	EndSession(ctx context.Context, id string) (*models.StudySession, error)
	Reset(ctx context.Context) error
}

// Server is the HTTP API for the browser extension.
type Server struct {
	service StudyService
	router  *gin.Engine
	http    *http.Server
}

// NewServer wires the routes for the given service.
func NewServer(service StudyService) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{service: service, router: router}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/review/next", s.handleNextPhrase)
		v1.POST("/review", s.handleSubmitReview)
		v1.POST("/review/check", s.handleCheck)
		v1.GET("/stats", s.handleStats)
		v1.GET("/phrases", s.handleListPhrases)
		v1.POST("/sessions", s.handleStartSession)
		v1.POST("/sessions/:id/end", s.handleEndSession)
		v1.DELETE("/progress", s.handleReset)
	}
}

// Handler exposes the router for tests and custom servers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until the context is cancelled, then shuts down
// gracefully. It returns nil on a clean shutdown.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.router}

	errc := make(chan error, 1)
	go func() {
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleNextPhrase returns the phrase the selection policy picks, or 204
// when the deck is empty.
func (s *Server) handleNextPhrase(c *gin.Context) {
	phrase, err := s.service.NextPhrase(c.Request.Context())
	if errors.Is(err, study.ErrNoPhrases) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, phrase)
}

func (s *Server) handleSubmitReview(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := s.service.SubmitReview(c.Request.Context(), req.PhraseID, req.Answer, req.Skipped, req.SessionID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "phrase not found"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, newReviewResponse(result))
}

func (s *Server) handleCheck(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := s.service.Check(c.Request.Context(), req.PhraseID, req.Answer)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "phrase not found"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCheckResponse(result))
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.service.Stats(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleListPhrases(c *gin.Context) {
	phrases, err := s.service.ListPhrases(c.Request.Context(), c.Query("category"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, phrases)
}

func (s *Server) handleStartSession(c *gin.Context) {
	session, err := s.service.StartSession(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (s *Server) handleEndSession(c *gin.Context) {
	session, err := s.service.EndSession(c.Request.Context(), c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) handleReset(c *gin.Context) {
	if err := s.service.Reset(c.Request.Context()); err != nil {
		serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func serverError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
