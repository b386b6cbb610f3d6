package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/starfolio/internal/projects"
)

func (s *Server) handleHome(c *gin.Context) {
	s.render(c, http.StatusOK, "index.html", gin.H{
		"featured":    s.opts.Projects.Preview(c.Request.Context(), FeaturedCount),
		"skillGroups": s.opts.Site.SkillGroups(),
	})
}

func (s *Server) handleAbout(c *gin.Context) {
	s.render(c, http.StatusOK, "about.html", gin.H{
		"title":       "About",
		"skillGroups": s.opts.Site.SkillGroups(),
	})
}

// queryFrom reads the filter state from q, language and sort parameters
func queryFrom(c *gin.Context) projects.Query {
	language := strings.TrimSpace(c.Query("language"))
	if language == "" {
		language = projects.AllLanguages
	}
	return projects.Query{
		Search:   c.Query("q"),
		Language: language,
		Sort:     projects.ParseSortKey(c.Query("sort")),
	}
}

func (s *Server) handleProjects(c *gin.Context) {
	listing := s.opts.Projects.List(c.Request.Context())
	query := queryFrom(c)

	s.render(c, http.StatusOK, "projects.html", gin.H{
		"title":     "Projects",
		"projects":  projects.Apply(listing.Projects, query),
		"stats":     projects.Summarize(listing.Projects),
		"origin":    listing.Origin,
		"query":     query,
		"languages": projects.Languages,
		"sortKeys":  projects.SortKeys,
	})
}

// handleProjectGrid renders only the grid for htmx filter updates
func (s *Server) handleProjectGrid(c *gin.Context) {
	listing := s.opts.Projects.List(c.Request.Context())
	c.HTML(http.StatusOK, "project-grid.html", gin.H{
		"projects": projects.Apply(listing.Projects, queryFrom(c)),
	})
}

func (s *Server) handleProjectModal(c *gin.Context) {
	project, err := s.lookupProject(c)
	if err != nil {
		c.String(http.StatusNotFound, "Project not found")
		return
	}
	c.HTML(http.StatusOK, "project-modal.html", gin.H{
		"project": project,
	})
}

func (s *Server) lookupProject(c *gin.Context) (projects.Project, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return projects.Project{}, projects.ErrProjectNotFound
	}
	return s.opts.Projects.Get(c.Request.Context(), id)
}

func (s *Server) handlePrivacy(c *gin.Context) {
	s.render(c, http.StatusOK, "privacy.html", gin.H{
		"title":     "Privacy Policy",
		"retention": retentionText(s.opts.Retention),
	})
}

func retentionText(d time.Duration) string {
	days := int(d.Hours() / 24)
	switch {
	case days <= 0:
		return "12 months"
	case days%365 == 0:
		if days == 365 {
			return "12 months"
		}
		return strconv.Itoa(days/365) + " years"
	case days%30 == 0:
		return strconv.Itoa(days/30) + " months"
	default:
		return strconv.Itoa(days) + " days"
	}
}

// notFound reports whether err means the requested item does not exist
func notFound(err error) bool {
	return errors.Is(err, projects.ErrProjectNotFound)
}
