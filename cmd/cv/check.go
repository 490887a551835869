package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ducban/minimalist-cv/internal/observability"
	"github.com/ducban/minimalist-cv/internal/palette"
	"github.com/ducban/minimalist-cv/internal/profile"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a profile document",
	Long: `Load the record, run it through schema and field validation, and report
the result. A file argument validates that document; otherwise the usual
record resolution applies (--profile flag, CV_PROFILE, built-in). With
--verbose the record summary, work history, and derived palette actions
are printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	var record *profile.Profile
	var err error
	if len(args) == 1 {
		record, err = profile.Load(args[0])
		if err != nil {
			err = fmt.Errorf("failed to load profile %s: %w", args[0], err)
		}
	} else {
		record, err = loadRecord()
	}
	if err != nil {
		return err
	}
	if err := record.Validate(); err != nil {
		return err
	}

	fmt.Printf("record ok: %s\n", record.Name)

	if verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintSummary(record)
		printer.PrintWorkHistory(record)
		printer.PrintActions(palette.ActionsFor(record))
	}
	return nil
}
