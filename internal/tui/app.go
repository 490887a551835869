// Package tui is the terminal viewer behind `cv view`. It shows the CV in
// a scrollable viewport and carries the same command palette as the web
// page, opened with ctrl+k.
package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ducban/minimalist-cv/internal/browser"
	"github.com/ducban/minimalist-cv/internal/palette"
	"github.com/ducban/minimalist-cv/internal/profile"
)

// App is the root Bubble Tea model.
type App struct {
	profile *profile.Profile
	palette *palette.Palette
	baseURL string

	viewport viewport.Model
	input    textinput.Model
	cursor   int
	status   string
	width    int
	height   int
	ready    bool

	// Side effects are injected so tests can observe them.
	openURL  func(string) error
	copyText func(string) error
}

// NewApp builds the viewer for a record. baseURL, when set, points at a
// running server so the print action can open the print view in a browser.
func NewApp(p *profile.Profile, baseURL string) App {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.Prompt = "> "

	return App{
		profile:  p,
		palette:  palette.New(palette.ActionsFor(p)),
		baseURL:  strings.TrimRight(baseURL, "/"),
		input:    ti,
		openURL:  browser.Open,
		copyText: clipboard.WriteAll,
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		bodyHeight := msg.Height - 3
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !a.ready {
			a.viewport = viewport.New(msg.Width, bodyHeight)
			a.ready = true
		} else {
			a.viewport.Width = msg.Width
			a.viewport.Height = bodyHeight
		}
		a.viewport.SetContent(buildContent(a.profile, contentWidth(msg.Width)))
		return a, nil

	case tea.KeyMsg:
		// The palette overlay captures every key while open.
		if a.palette.IsOpen() {
			return a.updatePalette(msg)
		}

		switch msg.String() {
		case "ctrl+k":
			a.openPalette()
			return a, textinput.Blink
		case "q", "ctrl+c":
			return a, tea.Quit
		case "g", "home":
			a.viewport.GotoTop()
			return a, nil
		case "G", "end":
			a.viewport.GotoBottom()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// updatePalette handles keys while the palette is open. Nothing here falls
// through to the viewport or the global bindings.
func (a App) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+k":
		a.palette.Toggle()
		a.input.Blur()
		return a, nil

	case "esc":
		a.palette.Dismiss()
		a.input.Blur()
		return a, nil

	case "up", "ctrl+p":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "down", "ctrl+n":
		if a.cursor < len(a.palette.Filtered())-1 {
			a.cursor++
		}
		return a, nil

	case "enter":
		filtered := a.palette.Filtered()
		if len(filtered) == 0 {
			return a, nil
		}
		if a.cursor >= len(filtered) {
			a.cursor = len(filtered) - 1
		}
		action, ok := a.palette.Select(filtered[a.cursor].ID)
		if !ok {
			return a, nil
		}
		a.input.Blur()
		a.execute(action)
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.palette.SetQuery(a.input.Value())
	if max := len(a.palette.Filtered()) - 1; a.cursor > max {
		if max < 0 {
			max = 0
		}
		a.cursor = max
	}
	return a, cmd
}

func (a *App) openPalette() {
	a.palette.Open()
	a.cursor = 0
	a.status = ""
	a.input.Reset()
	a.input.Focus()
}

// execute runs a selected action. Every branch is synchronous, so the
// palette is already closed by the time the status line updates.
func (a *App) execute(action palette.Action) {
	switch action.Kind {
	case palette.KindPrint:
		if a.baseURL == "" {
			a.status = "Print needs a running server; set CV_BASE_URL or pass --base-url."
			return
		}
		target := a.baseURL + "/print"
		if err := a.openURL(target); err != nil {
			a.status = "Could not open the print view: " + err.Error()
			return
		}
		a.status = "Opened the print view in your browser."

	case palette.KindOpenLink:
		if err := a.openURL(action.Target); err != nil {
			a.status = "Could not open " + action.Target + ": " + err.Error()
			return
		}
		a.status = "Opened " + action.Target

	case palette.KindCopy:
		if err := a.copyText(action.Target); err != nil {
			a.status = "Clipboard unavailable: " + err.Error()
			return
		}
		a.status = "Copied " + action.Target

	case palette.KindScrollTop:
		a.viewport.GotoTop()
		a.status = ""
	}
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(a.headerLine() + "\n")

	if a.palette.IsOpen() {
		b.WriteString(a.paletteView() + "\n")
	} else {
		b.WriteString(a.viewport.View() + "\n")
	}

	b.WriteString(a.statusLine())
	return b.String()
}

func (a App) headerLine() string {
	header := titleStyle.Render(a.profile.Name)
	if a.profile.About != "" {
		header += dimStyle.Render("  " + a.profile.About)
	}
	return header
}

func (a App) paletteView() string {
	filtered := a.palette.Filtered()

	var b strings.Builder
	b.WriteString(a.input.View() + "\n\n")
	if len(filtered) == 0 {
		b.WriteString(dimStyle.Render("No matching commands"))
	}
	for i, action := range filtered {
		if i == a.cursor {
			b.WriteString(selectedStyle.Render("> "+action.Title) + "\n")
		} else {
			b.WriteString("  " + action.Title + "\n")
		}
	}

	panelWidth := a.width - 4
	if panelWidth > 60 {
		panelWidth = 60
	}
	panel := paletteStyle.Width(panelWidth).Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.Place(a.width, a.viewport.Height, lipgloss.Center, lipgloss.Center, panel)
}

func (a App) statusLine() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	if a.palette.IsOpen() {
		return dimStyle.Render("enter run · esc dismiss · ctrl+k close")
	}
	return dimStyle.Render("ctrl+k palette · j/k scroll · q quit")
}

func contentWidth(w int) int {
	width := w - 2
	if width > 100 {
		width = 100
	}
	if width < 20 {
		width = 20
	}
	return width
}
