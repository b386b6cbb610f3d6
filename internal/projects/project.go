package projects

import (
	"errors"
	"time"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrCacheMiss       = errors.New("cache miss")
)

// Project is a summary of a public source repository shown in the gallery
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"html_url"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Topics      []string  `json:"topics"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Image       string    `json:"image,omitempty"`
	Size        int       `json:"size"`
	License     string    `json:"license,omitempty"`
	Owner       Owner     `json:"owner"`
}

type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Origin records where a listing came from
type Origin string

const (
	OriginLive     Origin = "live"
	OriginCache    Origin = "cache"
	OriginFallback Origin = "fallback"
)

// Listing is a loaded set of projects and its origin
type Listing struct {
	Projects []Project `json:"projects"`
	Origin   Origin    `json:"origin"`
}

// Find returns the project with the given id
func Find(list []Project, id int64) (Project, error) {
	for _, p := range list {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, ErrProjectNotFound
}
