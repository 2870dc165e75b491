package model

// Go models for the persisted CV document. JSON field names stay camelCase
// so records written by earlier clients load unchanged.

type PersonalInfo struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Website      string `json:"website"`
	Headline     string `json:"headline"`
	ProfileImage string `json:"profileImage"`
}

type Experience struct {
	ID          string   `json:"id"`
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description []string `json:"description"`
}

type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationYear string `json:"graduationYear"`
	GPA            string `json:"gpa,omitempty"`
}

// Skill levels run 1 (beginner) through 4 (expert).
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type Language struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Certification struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	Date       string `json:"date"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	URL          string   `json:"url,omitempty"`
}

type Publication struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Publisher   string `json:"publisher"`
	Date        string `json:"date"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

type Volunteering struct {
	ID           string   `json:"id"`
	Organization string   `json:"organization"`
	Role         string   `json:"role"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  []string `json:"description"`
}

type Award struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

type Interest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Document is the complete CV. It is a value type: update operations
// return a new Document and never mutate the receiver's collections.
type Document struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Languages      []Language      `json:"languages"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
	Publications   []Publication   `json:"publications"`
	Volunteering   []Volunteering  `json:"volunteering"`
	Awards         []Award         `json:"awards"`
	Interests      []Interest      `json:"interests"`
}

// EmptyDocument is the state of a brand-new CV: blank singletons, empty
// collections.
func EmptyDocument() Document {
	return Document{}
}

// Collection names one of the ordered entry lists. The values match
// the JSON keys of Document.
type Collection string

const (
	CollectionExperience     Collection = "experience"
	CollectionEducation      Collection = "education"
	CollectionSkills         Collection = "skills"
	CollectionLanguages      Collection = "languages"
	CollectionCertifications Collection = "certifications"
	CollectionProjects       Collection = "projects"
	CollectionPublications   Collection = "publications"
	CollectionVolunteering   Collection = "volunteering"
	CollectionAwards         Collection = "awards"
	CollectionInterests      Collection = "interests"
)
