// Package monitor orchestrates a single check of the configured page:
// fetch, extract, compare against the stored baseline, and — when a change
// is detected — persist the new baseline, then notify.
package monitor

import (
	"context"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/elijaffe/rolewatch/internal/config"
	"github.com/elijaffe/rolewatch/internal/detect"
	"github.com/elijaffe/rolewatch/internal/extract"
	"github.com/elijaffe/rolewatch/internal/fetch"
	"github.com/elijaffe/rolewatch/internal/notify"
	"github.com/elijaffe/rolewatch/internal/state"
)

// Notifier delivers the change messages. Satisfied by notify.Mailer.
type Notifier interface {
	Send(messages []string) error
}

// Runner performs one check per Run call. Runs are strictly sequential;
// the runner assumes at most one invocation executes at a time.
type Runner struct {
	cfg      config.Config
	store    *state.Store
	notifier Notifier
}

// New builds a runner from the configuration. The notifier is wired only
// when email alerts are enabled.
func New(cfg config.Config) *Runner {
	r := &Runner{
		cfg:   cfg,
		store: state.NewStore(cfg.StateDir),
	}
	if cfg.EmailEnabled {
		r.notifier = notify.Mailer{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.Sender,
			Password: cfg.Password,
			From:     cfg.Sender,
			To:       cfg.Recipient,
		}
	}
	return r
}

// Run executes one full check. A page with no usable tables ends the run
// cleanly without writing state or notifying. State is always persisted
// before notification is attempted, so a delivery failure cannot lose the
// detected change.
func (r *Runner) Run(ctx context.Context) error {
	logger := log.With("run", uuid.NewString()[:8])
	logger.Info("checking roles page", "url", r.cfg.URL)

	html, err := r.fetchPage(ctx)
	if err != nil {
		return err
	}
	logger.Info("page fetched", "bytes", len(html))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &fetch.Error{URL: r.cfg.URL, Message: "failed to parse HTML", Cause: err}
	}

	cur := detect.Observation{}
	if d, ok := extract.UpdateDate(doc.Text()); ok {
		cur.UpdateDate = &d
	} else {
		logger.Warn("no update-date stamp found on page")
	}

	ds, err := extract.Tables(doc)
	if errors.Is(err, extract.ErrNoTables) {
		logger.Warn("no tables found, nothing to do")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("tables extracted", "rows", len(ds))

	cur.Fingerprint, err = ds.Fingerprint()
	if err != nil {
		return err
	}

	prev, err := r.store.Load()
	if err != nil {
		return err
	}

	report := detect.Compare(cur, prev)
	if !report.Changed {
		logger.Info("no changes detected")
		return nil
	}

	for _, msg := range report.Messages {
		logger.Info("change detected", "detail", msg)
	}

	if err := r.store.Save(cur.UpdateDate, ds); err != nil {
		return err
	}
	logger.Info("baseline saved", "dir", r.cfg.StateDir)

	if r.notifier != nil {
		if err := r.notifier.Send(report.Messages); err != nil {
			return err
		}
		logger.Info("email alert sent", "to", r.cfg.Recipient)
	}

	logger.Info("check complete")
	return nil
}

func (r *Runner) fetchPage(ctx context.Context) (string, error) {
	timeout := r.cfg.Timeout
	if timeout <= 0 {
		timeout = fetch.DefaultTimeout
	}
	if r.cfg.UseBrowser {
		return fetch.WithBrowser(ctx, r.cfg.URL, timeout)
	}
	return fetch.Page(ctx, r.cfg.URL, &fetch.Options{
		Timeout:   timeout,
		UserAgent: fetch.DefaultUserAgent,
	})
}
