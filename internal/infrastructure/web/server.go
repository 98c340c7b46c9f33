package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"brandwatch/internal/domain"
	"brandwatch/internal/usecase"
)

// Scanner triggers one full pipeline run. Satisfied by *usecase.Pipeline;
// declared here so handler tests can substitute a fake.
type Scanner interface {
	Scan(ctx context.Context, query string, maxResults int, filters usecase.Filters) (usecase.Result, error)
}

// Server owns the user-facing controls: the dashboard page and the JSON API.
// Every request re-runs the whole scan; nothing is cached between requests.
type Server struct {
	scanner Scanner
	query   string
	logger  *slog.Logger
	engine  *gin.Engine
}

// New builds the router with CORS configured from the origin allow-list.
func New(scanner Scanner, query string, allowedOrigins []string, logger *slog.Logger) *Server {
	s := &Server{scanner: scanner, query: query, logger: logger}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	engine.GET("/", s.dashboard)
	engine.GET("/api/scan", s.scan)
	engine.GET("/healthz", s.health)

	s.engine = engine
	return s
}

// Run blocks serving on addr.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) scan(c *gin.Context) {
	result, err := s.scanner.Scan(c.Request.Context(), s.query, maxParam(c), filtersParam(c))
	if err != nil {
		if errors.Is(err, domain.ErrNoArticles) {
			c.JSON(http.StatusOK, ScanResponse{
				Articles: []ArticleResponse{},
				Message:  "Aucun article trouvé.",
			})
			return
		}
		s.logger.Error("scan failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scan failed"})
		return
	}

	articles := make([]ArticleResponse, 0, len(result.Articles))
	for _, article := range result.Articles {
		articles = append(articles, toArticleResponse(article))
	}

	c.JSON(http.StatusOK, ScanResponse{
		Articles: articles,
		Buzz:     &BuzzResponse{Score: result.Buzz.Score, Level: string(result.Buzz.Level)},
		Total:    result.Total,
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func maxParam(c *gin.Context) int {
	raw := c.Query("max")
	if raw == "" {
		return usecase.DefaultResults
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return usecase.DefaultResults
	}
	return usecase.ClampMaxResults(n)
}

func filtersParam(c *gin.Context) usecase.Filters {
	return usecase.Filters{
		Model: c.DefaultQuery("model", usecase.FilterAll),
		Tone:  c.DefaultQuery("tone", usecase.FilterAll),
	}
}
