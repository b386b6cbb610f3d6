package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/starfolio/internal/projects"
	"github.com/Zachkp/starfolio/internal/starfield"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func (s *Server) handleAPIProjects(c *gin.Context) {
	listing := s.opts.Projects.List(c.Request.Context())
	query := queryFrom(c)

	c.JSON(http.StatusOK, gin.H{
		"projects": projects.Apply(listing.Projects, query),
		"stats":    projects.Summarize(listing.Projects),
		"origin":   listing.Origin,
	})
}

func (s *Server) handleAPIProject(c *gin.Context) {
	project, err := s.lookupProject(c)
	if err != nil {
		if notFound(err) {
			respondError(c, http.StatusNotFound, "Project not found")
			return
		}
		s.logger.Error("project lookup failed", "error", err)
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, project)
}

// seedFrom reads the seed query parameter, defaulting to the server seed
func (s *Server) seedFrom(c *gin.Context) (uint64, error) {
	raw := c.Query("seed")
	if raw == "" {
		return s.opts.Seed, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}

func (s *Server) handleAPIStarfield(c *gin.Context) {
	variant, err := starfield.ParseVariant(c.Param("variant"))
	if err != nil {
		respondError(c, http.StatusNotFound, err.Error())
		return
	}

	seed, err := s.seedFrom(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "seed must be an unsigned integer")
		return
	}

	theme := themeFrom(c)
	if t := c.Query("theme"); t != "" {
		theme = starfield.ParseTheme(t)
	}

	field, err := starfield.New(variant, seed, theme)
	if err != nil {
		if errors.Is(err, starfield.ErrUnknownVariant) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.JSON(http.StatusOK, field.Snapshot(seed))
}

func (s *Server) handleAPIGeometry(c *gin.Context) {
	seed, err := s.seedFrom(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "seed must be an unsigned integer")
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.JSON(http.StatusOK, gin.H{
		"seed":       seed,
		"geometries": starfield.Geometries(seed),
	})
}
