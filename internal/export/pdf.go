package export

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"

	"github.com/jonathan/cv-portal/internal/preview"
)

// ErrExportInProgress is returned when an export for the same CV is already
// running; the caller treats it as a no-op.
var ErrExportInProgress = fmt.Errorf("export already in progress")

// DefaultTimeout bounds a single print-to-PDF round trip.
const DefaultTimeout = 60 * time.Second

var nonWord = regexp.MustCompile(`[^\w\s-]`)
var whitespace = regexp.MustCompile(`\s+`)

// FileName derives a filesystem-safe PDF file name from the profile name:
// lowercased, non-word characters stripped, whitespace collapsed to hyphens.
func FileName(profileName string) string {
	slug := strings.ToLower(strings.TrimSpace(profileName))
	slug = nonWord.ReplaceAllString(slug, "")
	slug = whitespace.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "cv-preview"
	}
	return slug + ".pdf"
}

// Exporter prints CV documents to PDF with a headless browser. Overlapping
// exports of the same CV are rejected rather than queued.
type Exporter struct {
	mu       sync.Mutex
	inFlight map[uuid.UUID]bool
	timeout  time.Duration
}

// NewExporter creates an exporter with the default timeout.
func NewExporter() *Exporter {
	return &Exporter{
		inFlight: make(map[uuid.UUID]bool),
		timeout:  DefaultTimeout,
	}
}

// begin marks the CV as exporting. Returns ErrExportInProgress when a
// previous export has not finished yet.
func (e *Exporter) begin(cvID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inFlight[cvID] {
		return ErrExportInProgress
	}
	e.inFlight[cvID] = true
	return nil
}

// finish clears the in-flight flag. Always runs via defer so a failed render
// can never leave the export permanently blocked.
func (e *Exporter) finish(cvID uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inFlight, cvID)
}

// Export renders the derived view-model and prints it to a single PDF.
// Returns the PDF bytes and the download file name.
func (e *Exporter) Export(ctx context.Context, cvID uuid.UUID, data preview.DerivedData) ([]byte, string, error) {
	if err := e.begin(cvID); err != nil {
		return nil, "", err
	}
	defer e.finish(cvID)

	html, err := RenderHTML(data)
	if err != nil {
		return nil, "", err
	}

	pdf, err := printToPDF(ctx, html, e.timeout)
	if err != nil {
		return nil, "", err
	}

	return pdf, FileName(data.ProfileName), nil
}

// printToPDF loads the document into a headless Chrome tab and prints it.
// Requires Chrome/Chromium to be installed on the system.
func printToPDF(ctx context.Context, html string, timeout time.Duration) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4
				WithPaperHeight(11.69).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	return pdf, nil
}
