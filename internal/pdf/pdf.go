// Package pdf exports the rendered page as an A4 PDF through headless Chrome.
package pdf

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ducban/minimalist-cv/internal/profile"
	"github.com/ducban/minimalist-cv/internal/server"
	"github.com/ducban/minimalist-cv/internal/server/ratelimit"
)

// A4 paper size in inches.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
)

// Options configures one export.
type Options struct {
	// URL is the page to print. When empty, the record is served on an
	// ephemeral loopback server for the duration of the export.
	URL string
	// Profile is the record to serve when URL is empty.
	Profile *profile.Profile
	// OutputPath is where the PDF lands.
	OutputPath string
	// Timeout bounds the whole export. Defaults to 60 seconds.
	Timeout time.Duration
	Logger  *zap.Logger
}

func (o *Options) normalize() error {
	if o.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if o.URL == "" && o.Profile == nil {
		return fmt.Errorf("either a URL or a record is required")
	}
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return nil
}

// Export prints the page to a PDF file. Chrome applies the print stylesheet
// itself, so the export sees exactly what the print dialog would produce.
func Export(ctx context.Context, opts Options) error {
	if err := opts.normalize(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	url := opts.URL
	var httpServer *http.Server
	var listener net.Listener
	if url == "" {
		var err error
		url, httpServer, listener, err = serveRecord(opts.Profile, opts.Logger)
		if err != nil {
			return fmt.Errorf("failed to serve record for export: %w", err)
		}
	}

	opts.Logger.Info("exporting pdf",
		zap.String("url", url),
		zap.String("output", opts.OutputPath))

	g, gctx := errgroup.WithContext(ctx)

	if httpServer != nil {
		g.Go(func() error {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("export server failed: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		if httpServer != nil {
			defer func() {
				shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancelShutdown()
				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					opts.Logger.Warn("export server shutdown failed", zap.Error(err))
				}
			}()
		}

		pdf, err := printPage(gctx, url)
		if err != nil {
			return fmt.Errorf("failed to print page: %w", err)
		}
		if err := os.WriteFile(opts.OutputPath, pdf, 0o644); err != nil {
			return fmt.Errorf("failed to write pdf: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// serveRecord prepares a loopback server for the record. The caller runs it
// and shuts it down; nothing is listening on the returned URL until then.
func serveRecord(p *profile.Profile, logger *zap.Logger) (string, *http.Server, net.Listener, error) {
	srv, err := server.New(server.Config{
		Addr:      "127.0.0.1:0",
		Profile:   p,
		Logger:    logger,
		RateLimit: &ratelimit.Config{},
	})
	if err != nil {
		return "", nil, nil, err
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, nil, err
	}

	httpServer := &http.Server{Handler: srv.Handler()}
	return "http://" + listener.Addr().String() + "/", httpServer, listener, nil
}

// printPage drives headless Chrome: navigate, wait for the body, print.
func printPage(ctx context.Context, url string) ([]byte, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if path := os.Getenv("CHROME_PATH"); path != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(path))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}
