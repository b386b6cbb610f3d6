// Package server wires the site's pages, fragments and JSON API onto gin.
package server

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	"github.com/Zachkp/starfolio/internal/analytics"
	"github.com/Zachkp/starfolio/internal/contact"
	"github.com/Zachkp/starfolio/internal/content"
	"github.com/Zachkp/starfolio/internal/projects"
	"github.com/Zachkp/starfolio/internal/starfield"
	"github.com/Zachkp/starfolio/web"
)

// ProjectService is the read side of the project listing
type ProjectService interface {
	List(ctx context.Context) projects.Listing
	Get(ctx context.Context, id int64) (projects.Project, error)
	Preview(ctx context.Context, n int) []projects.Project
}

// Analytics is the visitor store behind tracking and the admin pages
type Analytics interface {
	HashIP(ip string) string
	RecordVisit(ctx context.Context, ip, userAgent, path string) error
	Stats(ctx context.Context) (*analytics.Stats, error)
	RecentVisitors(ctx context.Context, limit int) ([]analytics.Visitor, error)
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
}

// Options configures a Server. Analytics may be nil, which disables tracking
// and the admin area.
type Options struct {
	Mode           string
	Site           *content.Site
	Projects       ProjectService
	Contact        *contact.Service
	Analytics      Analytics
	Retention      time.Duration
	AdminUsername  string
	AdminPassword  string
	Seed           uint64
	AllowedOrigins []string
	Logger         *slog.Logger
}

// FeaturedCount is how many projects the landing page previews
const FeaturedCount = 6

type Server struct {
	opts       Options
	engine     *gin.Engine
	handler    http.Handler
	logger     *slog.Logger
	adminToken string

	pending sync.WaitGroup
}

// New builds the gin engine and registers every route
func New(opts Options) (*Server, error) {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Site == nil {
		opts.Site = content.Default()
	}
	if opts.Retention <= 0 {
		opts.Retention = 365 * 24 * time.Hour
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		opts:       opts,
		engine:     gin.New(),
		logger:     opts.Logger,
		adminToken: token,
	}

	if !web.HasStarfield() {
		s.logger.Warn("starfield wasm assets not embedded, backgrounds will not render; run go generate ./web before building")
	}

	s.engine.SetHTMLTemplate(tmpl)
	s.engine.Use(requestID(), requestLogger(s.logger), recovery(s.logger))
	if opts.Analytics != nil {
		s.engine.Use(visitorTracking(opts.Analytics, &s.pending, s.logger))
	}
	s.routes()

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.handler = cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	})(s.engine)

	return s, nil
}

// Wait blocks until background visitor writes have finished. Call it after the
// HTTP server has shut down and before closing the analytics store.
func (s *Server) Wait() {
	s.pending.Wait()
}

// Handler returns the engine wrapped with CORS handling
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() {
	r := s.engine

	r.StaticFS("/static", http.FS(web.Static()))
	r.GET("/health", s.handleHealth)

	r.GET("/", s.handleHome)
	r.GET("/about", s.handleAbout)
	r.GET("/projects", s.handleProjects)
	r.GET("/projects/grid", s.handleProjectGrid)
	r.GET("/projects/:id", s.handleProjectModal)
	r.GET("/contact", s.handleContact)
	r.GET("/contact/form", s.handleContactForm)
	r.POST("/contact", s.handleContactSubmit)
	r.GET("/privacy", s.handlePrivacy)

	api := r.Group("/api")
	api.GET("/projects", s.handleAPIProjects)
	api.GET("/projects/:id", s.handleAPIProject)
	api.GET("/starfield/geometry", s.handleAPIGeometry)
	api.GET("/starfield/:variant", s.handleAPIStarfield)

	if s.opts.Analytics != nil {
		s.adminRoutes()
	}

	r.NoRoute(func(c *gin.Context) {
		s.render(c, http.StatusNotFound, "not-found.html", gin.H{
			"title":   "Not Found",
			"message": "That page drifted out of orbit.",
		})
	})
}

var templateFuncs = template.FuncMap{
	"languageColor": projects.LanguageColor,
	"formatDate":    projects.FormatDate,
	"subjectLabel":  contact.SubjectLabel,
}

// render adds the data every page layout needs before executing name
func (s *Server) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["site"] = s.opts.Site
	data["theme"] = string(themeFrom(c))
	data["path"] = c.Request.URL.Path
	data["seed"] = s.opts.Seed
	data["year"] = time.Now().Year()

	c.HTML(status, name, data)
}

// themeFrom reads the theme cookie, defaulting to dark
func themeFrom(c *gin.Context) starfield.Theme {
	value, _ := c.Cookie("theme")
	return starfield.ParseTheme(value)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
