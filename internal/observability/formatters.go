// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ducban/minimalist-cv/internal/palette"
	"github.com/ducban/minimalist-cv/internal/profile"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary outputs the identity fields and section counts of a record.
func (p *Printer) PrintSummary(record *profile.Profile) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:      %s\n", record.Name))
	if record.About != "" {
		sb.WriteString(fmt.Sprintf("Tagline:   %s\n", record.About))
	}
	if record.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", record.Location))
	}
	if record.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:     %s\n", record.Contact.Email))
	}
	if record.PersonalWebsiteURL != "" {
		sb.WriteString(fmt.Sprintf("Website:   %s\n", record.PersonalWebsiteURL))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Work entries:      %d\n", len(record.Work)))
	sb.WriteString(fmt.Sprintf("Education entries: %d\n", len(record.Education)))
	sb.WriteString(fmt.Sprintf("Skills:            %d\n", len(record.Skills)))
	sb.WriteString(fmt.Sprintf("Projects:          %d", len(record.Projects)))

	p.printBox("RECORD SUMMARY", sb.String())
}

// PrintWorkHistory outputs the work entries in record order.
func (p *Printer) PrintWorkHistory(record *profile.Profile) {
	if record == nil || len(record.Work) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(record.Work), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := record.Work[i]
		sb.WriteString(fmt.Sprintf("%s · %s\n", entry.Company, entry.Title))
		sb.WriteString(fmt.Sprintf("    %s - %s", entry.Start, entry.End))
		if len(entry.Badges) > 0 {
			sb.WriteString(fmt.Sprintf("  [%s]", strings.Join(entry.Badges, ", ")))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(record.Work) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(record.Work)-maxItemsToShow))
	}

	p.printBox("WORK HISTORY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintActions outputs the palette actions derived from a record.
func (p *Printer) PrintActions(actions []palette.Action) {
	if len(actions) == 0 {
		return
	}

	var sb strings.Builder
	for i, action := range actions {
		sb.WriteString(fmt.Sprintf("%-18s %s", action.ID, action.Title))
		if i < len(actions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PALETTE ACTIONS", sb.String())
}
