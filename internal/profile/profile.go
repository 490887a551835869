// Package profile defines the immutable CV record that drives every surface
// of the site: the rendered page, the read API, and the terminal viewer.
//
// The record is constructed once at startup (from the built-in data or a
// validated document) and handed to consumers read-only; nothing mutates it
// afterwards, so it is safe to share across concurrent request handlers
// without locking.
package profile

import (
	"github.com/ducban/minimalist-cv/internal/richtext"
)

// Present is the literal end-date sentinel for ongoing positions. It is
// display text, never parsed as a date.
const Present = "Present"

// Profile is the root CV record.
type Profile struct {
	Name               string         `json:"name" validate:"required"`
	Initials           string         `json:"initials"`
	Location           string         `json:"location"`
	LocationLink       string         `json:"locationLink" validate:"omitempty,url"`
	About              string         `json:"about"`
	Summary            richtext.Block `json:"summary"`
	AvatarURL          string         `json:"avatarUrl" validate:"omitempty,url"`
	PersonalWebsiteURL string         `json:"personalWebsiteUrl" validate:"omitempty,url"`

	Contact   Contact          `json:"contact"`
	Education []EducationEntry `json:"education" validate:"dive"`
	Work      []WorkEntry      `json:"work" validate:"dive"`
	Skills    []string         `json:"skills"`
	Projects  []ProjectEntry   `json:"projects" validate:"dive"`
}

// Contact groups the ways to reach the person. Social keeps its authored
// order; renderers and the API never reorder it.
type Contact struct {
	Email  string       `json:"email" validate:"omitempty,email"`
	Tel    string       `json:"tel"`
	Social []SocialLink `json:"social" validate:"dive"`
}

// SocialLink is one external profile (GitHub, LinkedIn, ...).
type SocialLink struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}

// EducationEntry is one school record. Entries are authored newest-first by
// convention; nothing enforces or re-sorts that order.
type EducationEntry struct {
	School string `json:"school" validate:"required"`
	Degree string `json:"degree" validate:"required"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// WorkEntry is one position. End may hold the Present sentinel.
type WorkEntry struct {
	Company     string         `json:"company" validate:"required"`
	Link        string         `json:"link" validate:"omitempty,url"`
	Badges      []string       `json:"badges"`
	Title       string         `json:"title" validate:"required"`
	Start       string         `json:"start" validate:"required"`
	End         string         `json:"end" validate:"required"`
	Description richtext.Block `json:"description"`
}

// ProjectEntry is one portfolio project.
type ProjectEntry struct {
	Title       string       `json:"title" validate:"required"`
	TechStack   []string     `json:"techStack"`
	Description string       `json:"description"`
	Link        *ProjectLink `json:"link,omitempty"`
}

// ProjectLink is the optional outbound link of a project.
type ProjectLink struct {
	Label string `json:"label"`
	Href  string `json:"href" validate:"required,url"`
}

// Normalize replaces nil list fields with empty slices so downstream code
// never branches on nil. Renderers and the wire projection rely on this.
func (p *Profile) Normalize() {
	if p.Summary == nil {
		p.Summary = richtext.Block{}
	}
	if p.Contact.Social == nil {
		p.Contact.Social = []SocialLink{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	if p.Work == nil {
		p.Work = []WorkEntry{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Projects == nil {
		p.Projects = []ProjectEntry{}
	}
	for i := range p.Work {
		if p.Work[i].Badges == nil {
			p.Work[i].Badges = []string{}
		}
		if p.Work[i].Description == nil {
			p.Work[i].Description = richtext.Block{}
		}
	}
	for i := range p.Projects {
		if p.Projects[i].TechStack == nil {
			p.Projects[i].TechStack = []string{}
		}
	}
}
