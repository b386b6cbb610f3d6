package projects

import "time"

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

var fallbackOwner = Owner{Login: "user", AvatarURL: "https://github.com/user.png"}

var fallback = []Project{
	{
		ID:          1,
		Name:        "3D-Portfolio-Website",
		FullName:    "user/3D-Portfolio-Website",
		Description: "Interactive portfolio with Three.js animations, modern design, and real-time GitHub integration",
		URL:         "https://github.com/user/3d-portfolio",
		Language:    "JavaScript",
		Stars:       156,
		Forks:       42,
		CreatedAt:   mustTime("2024-01-15T10:30:00Z"),
		UpdatedAt:   mustTime("2024-10-20T14:30:00Z"),
		Topics:      []string{"threejs", "portfolio", "webgl", "animation", "responsive"},
		Size:        2456,
		License:     "MIT",
		Owner:       fallbackOwner,
	},
	{
		ID:          2,
		Name:        "React-Dashboard-Pro",
		FullName:    "user/React-Dashboard-Pro",
		Description: "Full-stack dashboard application with real-time data visualization and advanced analytics",
		URL:         "https://github.com/user/react-dashboard",
		Language:    "TypeScript",
		Stars:       324,
		Forks:       89,
		CreatedAt:   mustTime("2023-11-08T15:45:00Z"),
		UpdatedAt:   mustTime("2024-10-18T09:15:00Z"),
		Topics:      []string{"react", "typescript", "dashboard", "charts", "api"},
		Size:        4532,
		License:     "MIT",
		Owner:       fallbackOwner,
	},
	{
		ID:          3,
		Name:        "Microservices-Architecture",
		FullName:    "user/Microservices-Architecture",
		Description: "Scalable microservices system with Docker, Kubernetes, and cloud-native patterns",
		URL:         "https://github.com/user/microservices",
		Language:    "Python",
		Stars:       267,
		Forks:       73,
		CreatedAt:   mustTime("2023-09-22T08:20:00Z"),
		UpdatedAt:   mustTime("2024-09-30T16:45:00Z"),
		Topics:      []string{"python", "docker", "kubernetes", "microservices", "cloud"},
		Size:        6789,
		License:     "Apache-2.0",
		Owner:       fallbackOwner,
	},
	{
		ID:          4,
		Name:        "Mobile-App-Framework",
		FullName:    "user/Mobile-App-Framework",
		Description: "Cross-platform mobile development framework with native performance and modern UI",
		URL:         "https://github.com/user/mobile-framework",
		Language:    "Dart",
		Stars:       198,
		Forks:       56,
		CreatedAt:   mustTime("2024-02-10T11:30:00Z"),
		UpdatedAt:   mustTime("2024-10-15T13:20:00Z"),
		Topics:      []string{"flutter", "dart", "mobile", "cross-platform", "ui"},
		Size:        3421,
		License:     "MIT",
		Owner:       fallbackOwner,
	},
	{
		ID:          5,
		Name:        "ML-DataScience-Toolkit",
		FullName:    "user/ML-DataScience-Toolkit",
		Description: "Comprehensive Python toolkit for machine learning and data science workflows",
		URL:         "https://github.com/user/ml-toolkit",
		Language:    "Python",
		Stars:       445,
		Forks:       132,
		CreatedAt:   mustTime("2023-06-15T14:20:00Z"),
		UpdatedAt:   mustTime("2024-10-10T10:30:00Z"),
		Topics:      []string{"python", "machine-learning", "data-science", "pandas", "scikit-learn"},
		Size:        5678,
		License:     "MIT",
		Owner:       fallbackOwner,
	},
	{
		ID:          6,
		Name:        "DevOps-Automation-Pipeline",
		FullName:    "user/DevOps-Automation-Pipeline",
		Description: "Complete CI/CD pipeline automation with infrastructure as code and monitoring",
		URL:         "https://github.com/user/devops-pipeline",
		Language:    "Go",
		Stars:       178,
		Forks:       41,
		CreatedAt:   mustTime("2023-12-05T09:15:00Z"),
		UpdatedAt:   mustTime("2024-09-25T15:40:00Z"),
		Topics:      []string{"devops", "cicd", "terraform", "monitoring", "automation"},
		Size:        2890,
		License:     "Apache-2.0",
		Owner:       fallbackOwner,
	},
}

// Fallback returns a copy of the hard-coded list served when the live source is unavailable
func Fallback() []Project {
	out := make([]Project, len(fallback))
	copy(out, fallback)
	return out
}
