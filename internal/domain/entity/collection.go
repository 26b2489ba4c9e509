package entity

import (
	"strings"
	"time"

	domainerrors "folio/internal/domain/errors"

	"github.com/google/uuid"
)

// Collection names used in routes and bulk replace payloads.
const (
	CollectionSkills       = "skills"
	CollectionProjects     = "projects"
	CollectionCertificates = "certificates"
	CollectionAchievements = "achievements"
)

// SkillCategory groups related skills under a heading.
type SkillCategory struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Items     []string  `json:"items"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SkillCategoryPatch struct {
	Category *string   `json:"category"`
	Items    *[]string `json:"items"`
}

func (s *SkillCategory) Validate() error {
	if strings.TrimSpace(s.Category) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("category is required")
	}
	if s.Items == nil {
		s.Items = []string{}
	}

	return nil
}

func (p *SkillCategoryPatch) Apply(s *SkillCategory) {
	setIfPresent(&s.Category, p.Category)
	setIfPresent(&s.Items, p.Items)
}

// Project is a portfolio project card.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	ImageURL    string    `json:"imageUrl"`
	GithubLink  string    `json:"githubLink"`
	LiveLink    string    `json:"liveLink"`
	Featured    bool      `json:"featured"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProjectPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	ImageURL    *string   `json:"imageUrl"`
	GithubLink  *string   `json:"githubLink"`
	LiveLink    *string   `json:"liveLink"`
	Featured    *bool     `json:"featured"`
}

func (p *Project) Validate() error {
	var missing []string
	if strings.TrimSpace(p.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(p.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(missing, " and ") + " required")
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	return nil
}

func (p *ProjectPatch) Apply(project *Project) {
	setIfPresent(&project.Title, p.Title)
	setIfPresent(&project.Description, p.Description)
	setIfPresent(&project.Tags, p.Tags)
	setIfPresent(&project.ImageURL, p.ImageURL)
	setIfPresent(&project.GithubLink, p.GithubLink)
	setIfPresent(&project.LiveLink, p.LiveLink)
	setIfPresent(&project.Featured, p.Featured)
}

// Certificate is an earned certification. Date is free text, e.g. "Mar 2024".
type Certificate struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Issuer    string    `json:"issuer"`
	Date      string    `json:"date"`
	Link      string    `json:"link"`
	BadgeIcon string    `json:"badgeIcon"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CertificatePatch struct {
	Title     *string `json:"title"`
	Issuer    *string `json:"issuer"`
	Date      *string `json:"date"`
	Link      *string `json:"link"`
	BadgeIcon *string `json:"badgeIcon"`
}

func (c *Certificate) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(c.Issuer) == "" {
		missing = append(missing, "issuer")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(missing, " and ") + " required")
	}

	return nil
}

func (p *CertificatePatch) Apply(c *Certificate) {
	setIfPresent(&c.Title, p.Title)
	setIfPresent(&c.Issuer, p.Issuer)
	setIfPresent(&c.Date, p.Date)
	setIfPresent(&c.Link, p.Link)
	setIfPresent(&c.BadgeIcon, p.BadgeIcon)
}

// Achievement is a dated milestone.
type Achievement struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AchievementPatch struct {
	Date   *string `json:"date"`
	Title  *string `json:"title"`
	Detail *string `json:"detail"`
}

func (a *Achievement) Validate() error {
	var missing []string
	if strings.TrimSpace(a.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(a.Title) == "" {
		missing = append(missing, "title")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(missing, " and ") + " required")
	}

	return nil
}

func (p *AchievementPatch) Apply(a *Achievement) {
	setIfPresent(&a.Date, p.Date)
	setIfPresent(&a.Title, p.Title)
	setIfPresent(&a.Detail, p.Detail)
}
