package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/ducban/minimalist-cv/internal/profile"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Section names one page section. The string value doubles as the template
// name the section renders through.
type Section string

const (
	SectionHeader    Section = "header"
	SectionAbout     Section = "about"
	SectionWork      Section = "work"
	SectionEducation Section = "education"
	SectionSkills    Section = "skills"
	SectionProjects  Section = "projects"
)

// Sections returns every page section in display order.
func Sections() []Section {
	return []Section{
		SectionHeader,
		SectionAbout,
		SectionWork,
		SectionEducation,
		SectionSkills,
		SectionProjects,
	}
}

// Renderer holds the parsed page templates. Construct once at startup and
// share across requests; rendering never mutates the record.
type Renderer struct {
	templates *template.Template
	logger    *zap.Logger
}

// New parses the embedded page templates. The rich text helper is installed
// as a template function so section templates can render formatted blocks.
func New(logger *zap.Logger) (*Renderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tmpl, err := template.New("cv").Funcs(template.FuncMap{
		"richtext": RichHTML,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse page templates", Cause: err}
	}
	return &Renderer{templates: tmpl, logger: logger}, nil
}

// DocumentOptions selects the page variant.
type DocumentOptions struct {
	// PrintMode renders the print variant: no palette wiring, and the page
	// invokes the print dialog once loaded.
	PrintMode bool
	// Pending replaces every section with its loading skeleton. Data is
	// synchronous today, so this only serves previews and tests.
	Pending bool
	// PaletteActions is the palette action list, pre-marshaled as JSON,
	// injected for the page script. Nil means an empty list.
	PaletteActions []byte
}

type pageData struct {
	Profile        *profile.Profile
	PrintMode      bool
	Sections       []template.HTML
	PaletteActions template.JS
}

// Document renders the whole page: every section in order, each behind its
// own fault boundary, composed into the layout.
func (r *Renderer) Document(p *profile.Profile, opts DocumentOptions) ([]byte, error) {
	ordered := Sections()
	sections := make([]template.HTML, 0, len(ordered))
	for _, section := range ordered {
		if opts.Pending {
			sections = append(sections, r.Skeleton(section))
			continue
		}
		sections = append(sections, r.Boundary(section, p))
	}

	actions := opts.PaletteActions
	if len(actions) == 0 {
		actions = []byte("[]")
	}

	var buf bytes.Buffer
	err := r.templates.ExecuteTemplate(&buf, "layout", pageData{
		Profile:        p,
		PrintMode:      opts.PrintMode,
		Sections:       sections,
		PaletteActions: template.JS(actions),
	})
	if err != nil {
		return nil, &TemplateError{Message: "failed to execute page layout", Cause: err}
	}
	return buf.Bytes(), nil
}

// Section renders one section to markup. A fault inside the section, whether
// a template error or a panic out of the rich text renderer, comes back as
// an error instead of escaping to the caller.
func (r *Renderer) Section(section Section, p *profile.Profile) (out template.HTML, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &RenderError{Message: fmt.Sprintf("section %s: recovered panic: %v", section, rec)}
		}
	}()

	var buf bytes.Buffer
	if execErr := r.templates.ExecuteTemplate(&buf, string(section), p); execErr != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to render section %s", section),
			Cause:   execErr,
		}
	}
	return template.HTML(buf.String()), nil
}

// Boundary renders one section and confines any fault to it. On failure the
// section is replaced by a fixed fallback with a retry control; sibling
// sections are unaffected. Retrying re-renders the same record, so a
// deterministically malformed entry fails again; that is accepted since the
// record is static.
func (r *Renderer) Boundary(section Section, p *profile.Profile) template.HTML {
	out, err := r.Section(section, p)
	if err != nil {
		r.logger.Error("section render failed",
			zap.String("section", string(section)),
			zap.Error(err))
		return r.Fallback(section)
	}
	return out
}

// Fallback is the fixed per-section failure block shown in place of a
// section that failed to render.
func (r *Renderer) Fallback(section Section) template.HTML {
	name := template.HTMLEscapeString(string(section))
	return template.HTML(fmt.Sprintf(
		`<div class="section-fallback" data-section="%s" role="alert"><p>This section failed to load.</p><a class="retry" href="">Retry</a></div>`,
		name))
}

// Skeleton is the fixed loading placeholder for a section.
func (r *Renderer) Skeleton(section Section) template.HTML {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "skeleton", section); err != nil {
		r.logger.Error("skeleton render failed",
			zap.String("section", string(section)),
			zap.Error(err))
		return r.Fallback(section)
	}
	return template.HTML(buf.String())
}
