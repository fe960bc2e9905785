package client

import "time"

// Asset is a stored file reference as the API returns it.
type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Kind     string `json:"kind"`
}

// Profile is the site owner's public identity.
type Profile struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	Title       string    `json:"title"`
	Tagline     string    `json:"tagline"`
	Bio         string    `json:"bio"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Location    string    `json:"location"`
	GithubURL   string    `json:"githubUrl"`
	LinkedinURL string    `json:"linkedinUrl"`
	TwitterURL  string    `json:"twitterUrl"`
	Image       Asset     `json:"image"`
	Resume      Asset     `json:"resume"`
	AboutImage  Asset     `json:"aboutImage"`
	Logo        Asset     `json:"logo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Skill is one entry inside a category.
type Skill struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"categoryId"`
	Name       string    `json:"name"`
	Level      int       `json:"level"`
	Icon       Asset     `json:"icon"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SkillCategory is the grouped public listing shape.
type SkillCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	Skills    []Skill   `json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Project is a portfolio project.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	LiveURL      string    `json:"liveUrl"`
	RepoURL      string    `json:"repoUrl"`
	Image        Asset     `json:"image"`
	Featured     bool      `json:"featured"`
	ShowOnHome   bool      `json:"showOnHome"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Experience is a work history entry.
type Experience struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	StartMonth  int       `json:"startMonth"`
	StartYear   int       `json:"startYear"`
	EndMonth    *int      `json:"endMonth,omitempty"`
	EndYear     *int      `json:"endYear,omitempty"`
	Status      string    `json:"status"`
	Logo        Asset     `json:"logo"`
	OfferLetter Asset     `json:"offerLetter"`
	Certificate Asset     `json:"certificate"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Education is a study history entry.
type Education struct {
	ID             string    `json:"id"`
	Institution    string    `json:"institution"`
	Degree         string    `json:"degree"`
	FieldOfStudy   string    `json:"fieldOfStudy"`
	Grade          string    `json:"grade"`
	Description    string    `json:"description"`
	StartYear      int       `json:"startYear"`
	CompletionYear *int      `json:"completionYear,omitempty"`
	Status         string    `json:"status"`
	Logo           Asset     `json:"logo"`
	Order          int       `json:"order"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Certification is a professional certification.
type Certification struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Organization   string    `json:"organization"`
	IssueMonth     int       `json:"issueMonth"`
	IssueYear      int       `json:"issueYear"`
	CredentialID   string    `json:"credentialId"`
	CredentialURL  string    `json:"credentialUrl"`
	Certificate    Asset     `json:"certificate"`
	Image          Asset     `json:"image"`
	ReusedImageURL string    `json:"reusedImageUrl"`
	Order          int       `json:"order"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Award is a recognition, optionally tied to an experience or education entry.
type Award struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Issuer         string    `json:"issuer"`
	Description    string    `json:"description"`
	Year           int       `json:"year"`
	AssociatedType string    `json:"associatedType"`
	AssociatedID   string    `json:"associatedId"`
	Image          Asset     `json:"image"`
	Order          int       `json:"order"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Article is a published piece of writing.
type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	Tags        []string   `json:"tags"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Pinned      bool       `json:"pinned"`
	ExternalURL string     `json:"externalUrl"`
	Cover       Asset      `json:"cover"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Testimonial is an approved visitor feedback entry.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating"`
	Avatar    Asset     `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// Home aggregates every section of the landing page. Sections that failed to
// load are left at their zero value.
type Home struct {
	Profile        Profile         `json:"profile"`
	Skills         []SkillCategory `json:"skills"`
	Projects       []Project       `json:"projects"`
	Experiences    []Experience    `json:"experiences"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Awards         []Award         `json:"awards"`
	Articles       []Article       `json:"articles"`
	Testimonials   []Testimonial   `json:"testimonials"`
}
