package entities

// PersonalInfo is the contact block pulled from the resume header.
// Fields are empty strings when nothing matched.
type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// ExperienceItem is one job entry.
type ExperienceItem struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Location     string   `json:"location"`
	Bullets      []string `json:"bullets"`
	Technologies []string `json:"technologies"`
}

// EducationItem is one degree entry.
type EducationItem struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	StartYear   string `json:"startYear"`
	EndYear     string `json:"endYear"`
	GPA         string `json:"gpa"`
}

// ProjectItem is one project entry.
type ProjectItem struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Bullets      []string `json:"bullets"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
}

// Achievement categories inferred from the line's wording.
const (
	AchievementAcademic      = "academic"
	AchievementProfessional  = "professional"
	AchievementCertification = "certification"
)

// Achievement is a single award or accomplishment line.
type Achievement struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Certification is a single certificate or course line.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// TechnologyLookup resolves the technologies mentioned in a blob of text.
// The skills matcher satisfies this; extractors stay decoupled from it.
type TechnologyLookup interface {
	Technologies(text string) []string
}

// noopLookup is used when no matcher is wired in.
type noopLookup struct{}

func (noopLookup) Technologies(string) []string { return nil }
