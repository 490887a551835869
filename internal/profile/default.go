package profile

import (
	"github.com/ducban/minimalist-cv/internal/richtext"
)

// Default returns the built-in CV record. It is the record served when no
// profile document is configured, and the fixture most tests run against.
// The returned value is already normalized.
func Default() *Profile {
	p := &Profile{
		Name:         "Ban Nguyen",
		Initials:     "BN",
		Location:     "Ho Chi Minh City, Vietnam, ICT",
		LocationLink: "https://www.google.com/maps/place/Ho+Chi+Minh+City",
		About:        "Full-stack engineer focused on minimal, fast web products.",
		Summary: richtext.Block{
			richtext.Paragraph(
				richtext.Run("Full-stack engineer with eight years across the stack, from "),
				richtext.Em("design systems"),
				richtext.Run(" to deployment pipelines. I like small teams, boring technology, and shipping things that stay shipped."),
			),
		},
		AvatarURL:          "https://github.com/ducban.png",
		PersonalWebsiteURL: "https://ducban.dev",
		Contact: Contact{
			Email: "hi@ducban.dev",
			Tel:   "+84901234567",
			Social: []SocialLink{
				{Name: "GitHub", URL: "https://github.com/ducban"},
				{Name: "LinkedIn", URL: "https://www.linkedin.com/in/ducban"},
				{Name: "X", URL: "https://x.com/ducban"},
			},
		},
		Education: []EducationEntry{
			{
				School: "Ho Chi Minh City University of Technology",
				Degree: "Bachelor's Degree in Computer Science",
				Start:  "2011",
				End:    "2015",
			},
		},
		Work: []WorkEntry{
			{
				Company: "Saltmine",
				Link:    "https://www.saltmine.com",
				Badges:  []string{"Remote"},
				Title:   "Senior Software Engineer",
				Start:   "2022",
				End:     Present,
				Description: richtext.Block{
					richtext.Paragraph(
						richtext.Run("Workplace design platform for enterprise real-estate teams."),
					),
					richtext.List(
						richtext.Item(richtext.Run("Lead the floor-planning editor, a canvas-heavy React app backed by a Go rendering service.")),
						richtext.Item(richtext.Run("Cut cold page loads from 4.1s to 1.2s by moving layout math server-side.")),
						richtext.Item(richtext.Run("Run the on-call rotation for the rendering fleet.")),
					),
				},
			},
			{
				Company: "Employment Hero",
				Link:    "https://employmenthero.com",
				Badges:  []string{"Hybrid"},
				Title:   "Senior Frontend Engineer",
				Start:   "2020",
				End:     "2022",
				Description: richtext.Block{
					richtext.Paragraph(
						richtext.Run("HR and payroll platform serving 300k+ businesses across APAC."),
					),
					richtext.List(
						richtext.Item(richtext.Run("Built the onboarding flow used by every new tenant.")),
						richtext.Item(richtext.Run("Introduced contract tests between the web client and the public API.")),
					),
				},
			},
			{
				Company: "NashTech",
				Link:    "https://www.nashtechglobal.com",
				Badges:  []string{},
				Title:   "Software Engineer",
				Start:   "2017",
				End:     "2020",
				Description: richtext.Block{
					richtext.Paragraph(
						richtext.Run("Delivery center work for UK retail and logistics clients, mostly "),
						richtext.Em("TypeScript"),
						richtext.Run(" and "),
						richtext.Em("C#"),
						richtext.Run("."),
					),
				},
			},
			{
				Company: "Freelance",
				Badges:  []string{"Remote"},
				Title:   "Web Developer",
				Start:   "2015",
				End:     "2017",
				Description: richtext.Block{
					richtext.Paragraph(
						richtext.Run("Brochure sites and storefronts for small businesses in Saigon."),
					),
				},
			},
		},
		Skills: []string{
			"TypeScript",
			"React/Next.js",
			"Node.js",
			"Go",
			"GraphQL",
			"PostgreSQL",
			"Tailwind CSS",
			"Docker",
			"AWS",
		},
		Projects: []ProjectEntry{
			{
				Title:       "Minimalist CV",
				TechStack:   []string{"Side project", "Go", "html/template"},
				Description: "Print-friendly single-page CV with a command palette and a one-query read API.",
				Link: &ProjectLink{
					Label: "cv.ducban.dev",
					Href:  "https://cv.ducban.dev",
				},
			},
			{
				Title:       "Monito",
				TechStack:   []string{"Side project", "Browser extension"},
				Description: "Tracks price drops across Vietnamese e-commerce sites and pings a Telegram channel.",
				Link: &ProjectLink{
					Label: "github.com/ducban/monito",
					Href:  "https://github.com/ducban/monito",
				},
			},
			{
				Title:       "typebox-form",
				TechStack:   []string{"Open source", "TypeScript"},
				Description: "Schema-driven form generator; renders a working form from a TypeBox schema.",
				Link: &ProjectLink{
					Label: "github.com/ducban/typebox-form",
					Href:  "https://github.com/ducban/typebox-form",
				},
			},
			{
				Title:       "Saltmine rendering service",
				TechStack:   []string{"At work", "Go", "WebGL"},
				Description: "Server-side floor-plan renderer producing vector tiles for the editor canvas.",
			},
		},
	}
	p.Normalize()
	return p
}
