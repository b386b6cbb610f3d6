package projects

import "time"

const (
	NoDescription   = "No description available"
	UnknownLanguage = "Unknown"

	// MaxCardTopics is how many topics a card shows before collapsing the rest into "+N"
	MaxCardTopics = 3
)

// DisplayDescription returns the description or the placeholder text
func (p Project) DisplayDescription() string {
	if p.Description == "" {
		return NoDescription
	}
	return p.Description
}

// DisplayLanguage returns the language or "Unknown"
func (p Project) DisplayLanguage() string {
	if p.Language == "" {
		return UnknownLanguage
	}
	return p.Language
}

// ShownTopics returns the topics a card displays
func (p Project) ShownTopics() []string {
	if len(p.Topics) <= MaxCardTopics {
		return p.Topics
	}
	return p.Topics[:MaxCardTopics]
}

// HiddenTopics returns how many topics a card collapses into "+N"
func (p Project) HiddenTopics() int {
	if len(p.Topics) <= MaxCardTopics {
		return 0
	}
	return len(p.Topics) - MaxCardTopics
}

// SizeKB is the repository size as reported by the listing, which is already in KB
func (p Project) SizeKB() int {
	if p.Size < 0 {
		return 0
	}
	return p.Size
}

var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"TypeScript": "#3178c6",
	"Python":     "#3572A5",
	"Go":         "#00ADD8",
	"Dart":       "#00B4AB",
	"Java":       "#b07219",
	"Rust":       "#dea584",
	"C++":        "#f34b7d",
	"C":          "#555555",
	"C#":         "#178600",
	"Ruby":       "#701516",
	"PHP":        "#4F5D95",
	"Swift":      "#F05138",
	"Kotlin":     "#A97BFF",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Shell":      "#89e051",
	"Vue":        "#41b883",
}

// LanguageColor returns the badge color for a language
func LanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return "#8b949e"
}

// FormatDate renders a timestamp the way cards show it
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}
