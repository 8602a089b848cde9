package fetch

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// browserSettleTime is how long to wait after the body is ready for
// client-side scripts to populate the tables.
const browserSettleTime = 3 * time.Second

// WithBrowser renders the page in a headless browser and returns the
// rendered HTML. The monitored page builds its tables client-side on some
// deployments, in which case a plain GET returns an empty shell. Requires
// Chrome/Chromium on the system.
func WithBrowser(ctx context.Context, urlStr string, timeout time.Duration) (string, error) {
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

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.Sleep(browserSettleTime),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "browser rendering failed", Cause: err}
	}

	return html, nil
}
