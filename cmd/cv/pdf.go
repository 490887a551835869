package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ducban/minimalist-cv/internal/pdf"
)

var (
	pdfOutput  string
	pdfURL     string
	pdfTimeout time.Duration
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Export the CV as a PDF",
	Long: `Print the page to an A4 PDF through headless Chrome. Without --url the
record is served on a loopback port just for the export.`,
	RunE: runPDF,
}

func init() {
	pdfCmd.Flags().StringVarP(&pdfOutput, "output", "o", "cv.pdf", "Output file")
	pdfCmd.Flags().StringVar(&pdfURL, "url", "", "Page to print (or set CV_BASE_URL; default: serve the record locally)")
	pdfCmd.Flags().DurationVar(&pdfTimeout, "timeout", time.Minute, "Export timeout")
	rootCmd.AddCommand(pdfCmd)
}

func runPDF(_ *cobra.Command, _ []string) error {
	record, err := loadRecord()
	if err != nil {
		return err
	}

	url := pdfURL
	if url == "" {
		url = os.Getenv("CV_BASE_URL")
	}

	err = pdf.Export(context.Background(), pdf.Options{
		URL:        url,
		Profile:    record,
		OutputPath: pdfOutput,
		Timeout:    pdfTimeout,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("wrote %s\n", pdfOutput)
	return nil
}
