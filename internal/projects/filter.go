package projects

import (
	"sort"
	"strings"
)

// SortKey orders a listing, always descending
type SortKey string

const (
	SortUpdated SortKey = "updated"
	SortStars   SortKey = "stars"
	SortForks   SortKey = "forks"
	SortCreated SortKey = "created"
)

// SortKeys lists the keys offered by the sort selector with their labels
var SortKeys = []struct {
	Key   SortKey
	Label string
}{
	{SortUpdated, "Recently Updated"},
	{SortStars, "Most Stars"},
	{SortForks, "Most Forks"},
	{SortCreated, "Recently Created"},
}

// ParseSortKey maps unknown or empty input to SortUpdated
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(s)) {
	case SortStars:
		return SortStars
	case SortForks:
		return SortForks
	case SortCreated:
		return SortCreated
	default:
		return SortUpdated
	}
}

// AllLanguages disables the language filter
const AllLanguages = "all"

// Languages is the fixed set of language tags offered as filter buttons.
// React and Vue are matched against project names.
var Languages = []string{AllLanguages, "JavaScript", "TypeScript", "Python", "Dart", "Go", "React", "Vue"}

// Query is the filter state of the projects page
type Query struct {
	Search   string
	Language string
	Sort     SortKey
}

// Apply filters and sorts list without modifying it
func Apply(list []Project, q Query) []Project {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]Project, 0, len(list))
	for _, p := range list {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if !matchesLanguage(p, q.Language) {
			continue
		}
		out = append(out, p)
	}

	Sort(out, q.Sort)
	return out
}

func matchesSearch(p Project, search string) bool {
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), search) {
		return true
	}
	for _, topic := range p.Topics {
		if strings.Contains(strings.ToLower(topic), search) {
			return true
		}
	}
	return false
}

func matchesLanguage(p Project, language string) bool {
	if language == "" || language == AllLanguages {
		return true
	}
	if p.Language == language {
		return true
	}
	// frameworks never show up as a repository language
	name := strings.ToLower(p.Name)
	switch language {
	case "Vue":
		return strings.Contains(name, "vue")
	case "React":
		return strings.Contains(name, "react")
	}
	return false
}

// Sort orders list in place, descending by key. Ties keep their order.
func Sort(list []Project, key SortKey) {
	var less func(a, b Project) bool
	switch ParseSortKey(string(key)) {
	case SortStars:
		less = func(a, b Project) bool { return a.Stars > b.Stars }
	case SortForks:
		less = func(a, b Project) bool { return a.Forks > b.Forks }
	case SortCreated:
		less = func(a, b Project) bool { return a.CreatedAt.After(b.CreatedAt) }
	default:
		less = func(a, b Project) bool { return a.UpdatedAt.After(b.UpdatedAt) }
	}

	sort.SliceStable(list, func(i, j int) bool {
		return less(list[i], list[j])
	})
}

// Stats summarises a listing for the stats banner
type Stats struct {
	Projects  int `json:"projects"`
	Stars     int `json:"stars"`
	Forks     int `json:"forks"`
	Languages int `json:"languages"`
}

func Summarize(list []Project) Stats {
	langs := make(map[string]struct{})
	stats := Stats{Projects: len(list)}
	for _, p := range list {
		stats.Stars += p.Stars
		stats.Forks += p.Forks
		if p.Language != "" {
			langs[p.Language] = struct{}{}
		}
	}
	stats.Languages = len(langs)
	return stats
}
