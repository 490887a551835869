// Package wire defines the flat, string-only projection of a profile record
// served by the read API. Rich text is flattened to plain strings and every
// leaf is already display-ready, so clients render values verbatim without
// interpreting markup.
package wire

import (
	"github.com/ducban/minimalist-cv/internal/profile"
)

// Profile is the API-facing record. Field names follow the JSON tags; list
// order matches the source record exactly.
type Profile struct {
	Name               string           `json:"name"`
	Initials           string           `json:"initials"`
	Location           string           `json:"location"`
	LocationLink       string           `json:"locationLink"`
	About              string           `json:"about"`
	Summary            string           `json:"summary"`
	AvatarURL          string           `json:"avatarUrl"`
	PersonalWebsiteURL string           `json:"personalWebsiteUrl"`
	Contact            Contact          `json:"contact"`
	Education          []EducationEntry `json:"education"`
	Work               []WorkEntry      `json:"work"`
	Skills             []string         `json:"skills"`
	Projects           []ProjectEntry   `json:"projects"`
}

// Contact mirrors profile.Contact with social links in authored order.
type Contact struct {
	Email  string       `json:"email"`
	Tel    string       `json:"tel"`
	Social []SocialLink `json:"social"`
}

// SocialLink is one external profile link.
type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// EducationEntry is one school record, dates as display strings.
type EducationEntry struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// WorkEntry is one position. End carries whatever the record holds,
// including the "Present" sentinel, untouched. Description is the rich
// description flattened to a single plain string.
type WorkEntry struct {
	Company     string   `json:"company"`
	Link        string   `json:"link"`
	Badges      []string `json:"badges"`
	Title       string   `json:"title"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Description string   `json:"description"`
}

// ProjectEntry is one portfolio project. Link is nil when the project has
// no outbound link.
type ProjectEntry struct {
	Title       string       `json:"title"`
	TechStack   []string     `json:"techStack"`
	Description string       `json:"description"`
	Link        *ProjectLink `json:"link,omitempty"`
}

// ProjectLink is the optional outbound link of a project.
type ProjectLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// FromProfile projects a profile record onto the wire shape. The projection
// is pure: the same record always yields the same result, and the returned
// value shares no slices with the source.
func FromProfile(p *profile.Profile) *Profile {
	w := &Profile{
		Name:               p.Name,
		Initials:           p.Initials,
		Location:           p.Location,
		LocationLink:       p.LocationLink,
		About:              p.About,
		Summary:            p.Summary.Flatten(),
		AvatarURL:          p.AvatarURL,
		PersonalWebsiteURL: p.PersonalWebsiteURL,
		Contact: Contact{
			Email:  p.Contact.Email,
			Tel:    p.Contact.Tel,
			Social: make([]SocialLink, 0, len(p.Contact.Social)),
		},
		Education: make([]EducationEntry, 0, len(p.Education)),
		Work:      make([]WorkEntry, 0, len(p.Work)),
		Skills:    append([]string{}, p.Skills...),
		Projects:  make([]ProjectEntry, 0, len(p.Projects)),
	}

	for _, s := range p.Contact.Social {
		w.Contact.Social = append(w.Contact.Social, SocialLink{Name: s.Name, URL: s.URL})
	}
	for _, e := range p.Education {
		w.Education = append(w.Education, EducationEntry{
			School: e.School,
			Degree: e.Degree,
			Start:  e.Start,
			End:    e.End,
		})
	}
	for _, e := range p.Work {
		w.Work = append(w.Work, WorkEntry{
			Company:     e.Company,
			Link:        e.Link,
			Badges:      append([]string{}, e.Badges...),
			Title:       e.Title,
			Start:       e.Start,
			End:         e.End,
			Description: e.Description.Flatten(),
		})
	}
	for _, e := range p.Projects {
		entry := ProjectEntry{
			Title:       e.Title,
			TechStack:   append([]string{}, e.TechStack...),
			Description: e.Description,
		}
		if e.Link != nil {
			entry.Link = &ProjectLink{Label: e.Link.Label, Href: e.Link.Href}
		}
		w.Projects = append(w.Projects, entry)
	}
	return w
}
