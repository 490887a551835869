package palette

import (
	"strings"

	"github.com/ducban/minimalist-cv/internal/profile"
)

// ActionKind tells the caller what side effect an action stands for.
type ActionKind string

const (
	// KindPrint triggers the print flow (browser print dialog, or the
	// print route from the terminal viewer).
	KindPrint ActionKind = "print"
	// KindOpenLink opens Target in a new browser context.
	KindOpenLink ActionKind = "open-link"
	// KindCopy copies Target to the clipboard.
	KindCopy ActionKind = "copy"
	// KindScrollTop jumps to the top of the page.
	KindScrollTop ActionKind = "scroll-top"
)

// Action is one palette entry. The JSON form is injected into the page for
// the browser overlay, so the tags are part of the page contract.
type Action struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Kind   ActionKind `json:"kind"`
	Target string     `json:"target,omitempty"`
}

// ActionsFor derives the fixed action list from a record: print, one open
// action per outbound link, copy-email, and jump-to-top. The derivation is
// deterministic; the list never changes while the process runs.
func ActionsFor(p *profile.Profile) []Action {
	actions := []Action{
		{ID: "print", Title: "Print", Kind: KindPrint},
	}
	if p.PersonalWebsiteURL != "" {
		actions = append(actions, Action{
			ID:     "open-website",
			Title:  "Open personal website",
			Kind:   KindOpenLink,
			Target: p.PersonalWebsiteURL,
		})
	}
	for _, s := range p.Contact.Social {
		actions = append(actions, Action{
			ID:     "open-" + slugify(s.Name),
			Title:  "Open " + s.Name,
			Kind:   KindOpenLink,
			Target: s.URL,
		})
	}
	if p.Contact.Email != "" {
		actions = append(actions, Action{
			ID:     "copy-email",
			Title:  "Copy email address",
			Kind:   KindCopy,
			Target: p.Contact.Email,
		})
	}
	actions = append(actions, Action{
		ID:     "top",
		Title:  "Jump to top",
		Kind:   KindScrollTop,
		Target: "#top",
	})
	return actions
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
