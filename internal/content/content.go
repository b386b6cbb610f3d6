package content

// Category groups skills on the about page
type Category string

const (
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryDevOps   Category = "devops"
	CategoryDatabase Category = "database"
	CategoryTools    Category = "tools"
)

// Categories lists every skill category in display order
var Categories = []Category{CategoryFrontend, CategoryBackend, CategoryDatabase, CategoryDevOps, CategoryTools}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label is the heading shown above a category's skills
func (c Category) Label() string {
	switch c {
	case CategoryFrontend:
		return "Frontend"
	case CategoryBackend:
		return "Backend"
	case CategoryDatabase:
		return "Database"
	case CategoryDevOps:
		return "DevOps"
	case CategoryTools:
		return "Tools"
	default:
		return string(c)
	}
}

// Icon returns the emoji shown on skill cards
func (c Category) Icon() string {
	switch c {
	case CategoryFrontend:
		return "⚛️"
	case CategoryBackend:
		return "🔧"
	case CategoryDatabase:
		return "🗄️"
	case CategoryDevOps:
		return "☁️"
	default:
		return "🛠️"
	}
}

type Skill struct {
	Name         string   `yaml:"name" json:"name"`
	Category     Category `yaml:"category" json:"category"`
	Level        int      `yaml:"level" json:"level"`
	Experience   string   `yaml:"experience" json:"experience"`
	Technologies []string `yaml:"technologies" json:"technologies"`
}

type Experience struct {
	Title        string   `yaml:"title" json:"title"`
	Company      string   `yaml:"company" json:"company"`
	Period       string   `yaml:"period" json:"period"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
}

// Credential is either a degree or a certification
type Credential struct {
	Title       string `yaml:"title" json:"title"`
	Institution string `yaml:"institution" json:"institution"`
	Period      string `yaml:"period" json:"period"`
	Note        string `yaml:"note,omitempty" json:"note,omitempty"`
}

type Link struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value,omitempty" json:"value,omitempty"`
	Href  string `yaml:"href" json:"href"`
}

// Availability is one row of the "what I'm open to" list on the contact page
type Availability struct {
	Service string `yaml:"service" json:"service"`
	Status  string `yaml:"status" json:"status"`
}

// Open reports whether the status reads as available
func (a Availability) Open() bool {
	return a.Status == "Available"
}

// Site is all static copy rendered by the pages
type Site struct {
	Title        string         `yaml:"title"`
	Description  string         `yaml:"description"`
	Owner        string         `yaml:"owner"`
	Tagline      string         `yaml:"tagline"`
	HeroGreeting string         `yaml:"hero_greeting"`
	HeroText     string         `yaml:"hero_text"`
	AboutMe      string         `yaml:"about_me"`
	Role         string         `yaml:"role"`
	CallToAction string         `yaml:"call_to_action"`
	Navigation   []Link         `yaml:"navigation"`
	Socials      []Link         `yaml:"socials"`
	ContactInfo  []Link         `yaml:"contact_info"`
	Availability []Availability `yaml:"availability"`
	Skills       []Skill        `yaml:"skills"`
	Experience   []Experience   `yaml:"experience"`
	Education    []Credential   `yaml:"education"`
	Certs        []Credential   `yaml:"certifications"`
}

// SkillsIn returns the skills of one category, in authored order
func (s *Site) SkillsIn(c Category) []Skill {
	var out []Skill
	for _, skill := range s.Skills {
		if skill.Category == c {
			out = append(out, skill)
		}
	}
	return out
}

// SkillGroup is a category with its skills and mean proficiency
type SkillGroup struct {
	Category Category
	Skills   []Skill
	Average  int
}

// SkillGroups returns non-empty categories in display order
func (s *Site) SkillGroups() []SkillGroup {
	var groups []SkillGroup
	for _, c := range Categories {
		skills := s.SkillsIn(c)
		if len(skills) == 0 {
			continue
		}
		total := 0
		for _, skill := range skills {
			total += skill.Level
		}
		groups = append(groups, SkillGroup{
			Category: c,
			Skills:   skills,
			Average:  total / len(skills),
		})
	}
	return groups
}

// Default returns the built-in site copy
func Default() *Site {
	return &Site{
		Title:        "Portfolio - Full Stack Developer",
		Description:  "Modern portfolio showcasing full-stack development expertise with 3D graphics and interactive experiences",
		Owner:        "Alex Yu",
		Tagline:      "Full Stack Developer",
		HeroGreeting: "Hi, I'm Alex",
		HeroText:     "I'm an aspiring full-stack engineer. Welcome to my portfolio!",
		AboutMe: `I'm a passionate full-stack developer with over 5 years of experience creating
digital solutions that make a difference. I specialize in modern web technologies,
3D graphics, and building scalable applications.`,
		Role:         "Specialized in modern web technologies",
		CallToAction: "Ready to bring your ideas to life? Let's collaborate on your next project and create something extraordinary together.",
		Navigation: []Link{
			{Label: "Home", Href: "/"},
			{Label: "About", Href: "/about"},
			{Label: "Projects", Href: "/projects"},
			{Label: "Contact", Href: "/contact"},
		},
		Socials: []Link{
			{Label: "Discord", Href: "https://discord.com/users/321288032110116869"},
			{Label: "GitHub", Href: "https://github.com/axy1rrfc"},
			{Label: "LinkedIn", Href: "https://www.linkedin.com/in/alex-yu-n44/"},
		},
		ContactInfo: []Link{
			{Label: "Email", Value: "hello@portfolio.dev", Href: "mailto:hello@portfolio.dev"},
			{Label: "Phone", Value: "+1 (555) 123-4567", Href: "tel:+15551234567"},
			{Label: "Location", Value: "San Francisco, CA", Href: "#"},
			{Label: "Timezone", Value: "PST (UTC-8)", Href: "#"},
		},
		Availability: []Availability{
			{Service: "Project Consultation", Status: "Available"},
			{Service: "Freelance Work", Status: "Available"},
			{Service: "Full-time Position", Status: "Considering"},
			{Service: "Speaking Engagements", Status: "Available"},
		},
		Skills: []Skill{
			{Name: "React", Category: CategoryFrontend, Level: 95, Experience: "5+ years", Technologies: []string{"Next.js", "Redux", "Hooks", "Context API"}},
			{Name: "TypeScript", Category: CategoryFrontend, Level: 90, Experience: "4+ years", Technologies: []string{"Generics", "Interfaces", "Decorators", "Type System"}},
			{Name: "Three.js", Category: CategoryFrontend, Level: 85, Experience: "3+ years", Technologies: []string{"WebGL", "Shaders", "3D Math", "Animation"}},
			{Name: "Node.js", Category: CategoryBackend, Level: 88, Experience: "4+ years", Technologies: []string{"Express", "NestJS", "GraphQL", "WebSocket"}},
			{Name: "Python", Category: CategoryBackend, Level: 82, Experience: "3+ years", Technologies: []string{"Django", "FastAPI", "Pandas", "NumPy"}},
			{Name: "PostgreSQL", Category: CategoryDatabase, Level: 85, Experience: "4+ years", Technologies: []string{"ORM", "Query Optimization", "Indexing", "Migrations"}},
			{Name: "Docker", Category: CategoryDevOps, Level: 78, Experience: "3+ years", Technologies: []string{"Containers", "Compose", "Multi-stage Builds", "Registry"}},
			{Name: "AWS", Category: CategoryDevOps, Level: 75, Experience: "2+ years", Technologies: []string{"EC2", "S3", "Lambda", "RDS", "CloudFormation"}},
		},
		Experience: []Experience{
			{
				Title:        "Senior Full Stack Developer",
				Company:      "Tech Innovations Inc.",
				Period:       "2022 - Present",
				Description:  "Leading development of scalable web applications using React, Node.js, and cloud technologies. Mentoring junior developers and architecting solutions for high-traffic applications.",
				Technologies: []string{"React", "TypeScript", "Node.js", "AWS", "Docker"},
			},
			{
				Title:        "Full Stack Developer",
				Company:      "Digital Solutions Co.",
				Period:       "2020 - 2022",
				Description:  "Developed and maintained multiple client projects using modern JavaScript frameworks. Built RESTful APIs and integrated third-party services for enhanced functionality.",
				Technologies: []string{"Vue.js", "Python", "Django", "PostgreSQL", "Redis"},
			},
			{
				Title:        "Frontend Developer",
				Company:      "Creative Web Studio",
				Period:       "2019 - 2020",
				Description:  "Specialized in creating responsive and interactive user interfaces. Collaborated with design teams to implement pixel-perfect designs and smooth animations.",
				Technologies: []string{"HTML/CSS", "JavaScript", "SASS", "jQuery", "Webpack"},
			},
			{
				Title:        "Junior Web Developer",
				Company:      "Startup Hub",
				Period:       "2018 - 2019",
				Description:  "Started my professional journey building websites and learning modern development practices. Gained experience in version control, agile methodologies, and collaborative development.",
				Technologies: []string{"PHP", "MySQL", "Git", "Bootstrap", "Laravel"},
			},
		},
		Education: []Credential{
			{
				Title:       "Bachelor of Science in Computer Science",
				Institution: "University of Technology",
				Period:      "2014 - 2018",
				Note:        "Specialized in software engineering and web technologies",
			},
		},
		Certs: []Credential{
			{Title: "AWS Certified Solutions Architect", Institution: "Amazon Web Services", Period: "2023"},
			{Title: "Google Cloud Professional Developer", Institution: "Google Cloud", Period: "2022"},
			{Title: "React Advanced Certification", Institution: "Meta (Facebook)", Period: "2021"},
		},
	}
}
