package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ducban/minimalist-cv/internal/tui"
)

var viewBaseURL string

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "View the CV in the terminal",
	Long: `Open the record in a terminal viewer with the same command palette as
the web page (ctrl+k). The print action needs a running server; point
--base-url or CV_BASE_URL at it.`,
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVar(&viewBaseURL, "base-url", "", "Address of a running server (or set CV_BASE_URL)")
	rootCmd.AddCommand(viewCmd)
}

func runView(_ *cobra.Command, _ []string) error {
	record, err := loadRecord()
	if err != nil {
		return err
	}

	base := viewBaseURL
	if base == "" {
		base = os.Getenv("CV_BASE_URL")
	}

	app := tui.NewApp(record, base)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}
	return nil
}
