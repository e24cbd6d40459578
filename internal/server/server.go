package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agenthands/talentscout/internal/config"
	"github.com/agenthands/talentscout/internal/insight"
	"github.com/agenthands/talentscout/internal/profile"
	"github.com/agenthands/talentscout/internal/upstream"
)

type Server struct {
	Config   *config.Config
	Upstream upstream.Client
	Resolver *profile.Resolver
	Logger   *zap.Logger
}

// NewServer wires the upstream client and the profile resolver from cfg.
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	client := upstream.NewHTTPClient(cfg.Upstream, cfg.Search)
	// Attempts are bounded by the resolver's contexts, not by the client.
	providers := profile.Providers(cfg, upstream.NewHTTP(0))
	resolver := profile.NewResolver(providers, cfg.Profile.AttemptTimeout(), cfg.Profile.TotalTimeout(), logger)

	return New(cfg, client, resolver, logger)
}

func New(cfg *config.Config, client upstream.Client, resolver *profile.Resolver, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		Config:   cfg,
		Upstream: client,
		Resolver: resolver,
		Logger:   logger,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(s.Logger), gin.Recovery())

	r.GET("/healthz", s.Health)

	api := r.Group("/api")
	api.POST("/search", s.Search)
	api.GET("/search/genome/:username", s.Genome)
	api.GET("/profile/:username", s.Profile)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type SearchRequest struct {
	Query string `json:"query"`
}

func (s *Server) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	people, err := s.Upstream.SearchPeople(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, upstream.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
			return
		}
		s.Logger.Error("search failed", zap.String("request_id", c.GetString(requestIDKey)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}

	c.JSON(http.StatusOK, people)
}

func (s *Server) Genome(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	body, err := s.Upstream.GenomeBio(c.Request.Context(), username)
	switch {
	case errors.Is(err, upstream.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":    "Profile not found",
			"username": username,
			"status":   http.StatusNotFound,
		})
		return
	case errors.Is(err, upstream.ErrEmptyBody):
		c.JSON(http.StatusNotFound, gin.H{"error": "No data found for this user"})
		return
	case err != nil:
		s.Logger.Error("genome fetch failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("username", username),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile data"})
		return
	}

	c.Header("Access-Control-Allow-Origin", "*")
	c.Data(http.StatusOK, "application/json", body)
}

// Profile resolves a profile through the candidate chain. It never fails
// once the username is valid; demo data is flagged in the response.
func (s *Server) Profile(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	res := s.Resolver.Resolve(c.Request.Context(), username)
	c.JSON(http.StatusOK, insight.View(res.Profile, res.Source, res.Live, res.ErrorMessage(), res.Attempts))
}
