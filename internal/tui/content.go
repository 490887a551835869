package tui

import (
	"strings"

	"github.com/ducban/minimalist-cv/internal/profile"
)

// buildContent lays the record out as plain styled text for the viewport.
// Entries appear in record order, one block per entry.
func buildContent(p *profile.Profile, width int) string {
	body := func(s string) string {
		return lipglossWidth(width).Render(s)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(p.Name) + "\n")
	if p.About != "" {
		b.WriteString(body(p.About) + "\n")
	}
	if p.Location != "" {
		b.WriteString(dimStyle.Render(p.Location) + "\n")
	}
	b.WriteString(contactLine(p))

	if !p.Summary.IsEmpty() {
		b.WriteString("\n" + sectionStyle.Render("About") + "\n")
		b.WriteString(body(p.Summary.Flatten()) + "\n")
	}

	if len(p.Work) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Work Experience") + "\n")
		for _, w := range p.Work {
			line := accentStyle.Render(w.Company)
			for _, badge := range w.Badges {
				line += " " + badgeStyle.Render(badge)
			}
			line += dimStyle.Render("  " + w.Start + " - " + w.End)
			b.WriteString(line + "\n")
			b.WriteString(w.Title + "\n")
			if !w.Description.IsEmpty() {
				b.WriteString(body(w.Description.Flatten()) + "\n")
			}
			b.WriteString("\n")
		}
	}

	if len(p.Education) > 0 {
		b.WriteString(sectionStyle.Render("Education") + "\n")
		for _, e := range p.Education {
			line := accentStyle.Render(e.School)
			if e.Start != "" || e.End != "" {
				line += dimStyle.Render("  " + e.Start + " - " + e.End)
			}
			b.WriteString(line + "\n")
			b.WriteString(e.Degree + "\n\n")
		}
	}

	if len(p.Skills) > 0 {
		b.WriteString(sectionStyle.Render("Skills") + "\n")
		b.WriteString(body(strings.Join(p.Skills, " · ")) + "\n")
	}

	if len(p.Projects) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Projects") + "\n")
		for _, proj := range p.Projects {
			b.WriteString(accentStyle.Render(proj.Title) + "\n")
			if proj.Description != "" {
				b.WriteString(body(proj.Description) + "\n")
			}
			if len(proj.TechStack) > 0 {
				b.WriteString(dimStyle.Render(strings.Join(proj.TechStack, " · ")) + "\n")
			}
			if proj.Link != nil {
				b.WriteString(dimStyle.Render(proj.Link.Href) + "\n")
			}
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func contactLine(p *profile.Profile) string {
	var parts []string
	if p.Contact.Email != "" {
		parts = append(parts, p.Contact.Email)
	}
	if p.Contact.Tel != "" {
		parts = append(parts, p.Contact.Tel)
	}
	if p.PersonalWebsiteURL != "" {
		parts = append(parts, p.PersonalWebsiteURL)
	}
	for _, s := range p.Contact.Social {
		parts = append(parts, s.URL)
	}
	if len(parts) == 0 {
		return ""
	}
	return dimStyle.Render(strings.Join(parts, "  ")) + "\n"
}
