package server

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminCookie = "admin_token"

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate admin token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// adminAuth redirects to the login page unless the session cookie matches
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !constantTimeEqual(token, s.adminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) adminRoutes() {
	r := s.engine
	r.GET("/admin/login", s.handleAdminLoginPage)
	r.POST("/admin/login", s.handleAdminLogin)
	r.GET("/admin/logout", s.handleAdminLogout)

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())
	admin.GET("/dashboard", s.handleAdminDashboard)
	admin.GET("/visitors", s.handleAdminVisitors)
	admin.GET("/api/stats", s.handleAdminStats)
	admin.GET("/export/stats", s.handleAdminExport)
	admin.POST("/cleanup", s.handleAdminCleanup)
}

func (s *Server) handleAdminLoginPage(c *gin.Context) {
	s.render(c, http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
}

func (s *Server) handleAdminLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	visitor := s.opts.Analytics.HashIP(c.ClientIP())

	userOK := constantTimeEqual(username, s.opts.AdminUsername)
	passOK := constantTimeEqual(password, s.opts.AdminPassword)
	if !userOK || !passOK || s.opts.AdminPassword == "" {
		s.logger.Warn("failed admin login attempt", "visitor", visitor)
		s.render(c, http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
		return
	}

	c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", c.Request.TLS != nil, true)
	s.logger.Info("admin login successful", "visitor", visitor)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (s *Server) handleAdminLogout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, "/admin", "", c.Request.TLS != nil, true)
	s.logger.Info("admin logout", "visitor", s.opts.Analytics.HashIP(c.ClientIP()))
	c.Redirect(http.StatusFound, "/admin/login")
}

func (s *Server) adminError(c *gin.Context, message string, err error) {
	s.logger.Error(message, "error", err)
	s.render(c, http.StatusInternalServerError, "admin-error.html", gin.H{
		"title": "Error",
		"error": message,
	})
}

func (s *Server) handleAdminDashboard(c *gin.Context) {
	stats, err := s.opts.Analytics.Stats(c.Request.Context())
	if err != nil {
		s.adminError(c, "Failed to load statistics", err)
		return
	}
	s.render(c, http.StatusOK, "admin-dashboard.html", gin.H{
		"title": "Dashboard",
		"stats": stats,
	})
}

func (s *Server) handleAdminVisitors(c *gin.Context) {
	visitors, err := s.opts.Analytics.RecentVisitors(c.Request.Context(), 200)
	if err != nil {
		s.adminError(c, "Failed to load visitors", err)
		return
	}
	s.render(c, http.StatusOK, "admin-visitors.html", gin.H{
		"title":    "Visitors",
		"visitors": visitors,
	})
}

func (s *Server) handleAdminStats(c *gin.Context) {
	stats, err := s.opts.Analytics.Stats(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleAdminExport(c *gin.Context) {
	stats, err := s.opts.Analytics.Stats(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	s.logger.Info("admin stats exported", "visitor", s.opts.Analytics.HashIP(c.ClientIP()))
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleAdminCleanup(c *gin.Context) {
	removed, err := s.opts.Analytics.Cleanup(c.Request.Context(), s.opts.Retention)
	if err != nil {
		s.adminError(c, "Privacy cleanup failed", err)
		return
	}

	s.logger.Info("manual privacy cleanup", "removed", removed)
	if c.GetHeader("Accept") == "application/json" {
		c.JSON(http.StatusOK, gin.H{"removed": removed})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}
