package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/elijaffe/rolewatch/internal/config"
	"github.com/elijaffe/rolewatch/internal/fetch"
	"github.com/elijaffe/rolewatch/internal/monitor"
)

var checkCommand = &cobra.Command{
	Use:   "check",
	Short: "Fetch the page once and report whether it changed",
	Long: `Performs one full check: fetch the page, extract every role table and the
"Last update" stamp, compare against the persisted baseline, and when a change
is detected save the new baseline and (optionally) send an email alert.

SMTP credentials are read from SMTP_USERNAME and SMTP_PASSWORD; the recipient
may be set via ROLEWATCH_RECIPIENT instead of --to. A .env file next to the
binary is honored.`,
	RunE: runCheck,
}

var (
	checkURL      string
	checkStateDir string
	checkTimeout  time.Duration
	checkEmail    bool
	checkBrowser  bool
	checkTo       string
	checkSMTPHost string
	checkSMTPPort int
	checkVerbose  bool
)

func init() {
	checkCommand.Flags().StringVarP(&checkURL, "url", "u", config.DefaultURL, "Page URL to monitor")
	checkCommand.Flags().StringVar(&checkStateDir, "state-dir", config.DefaultStateDir, "Directory holding the persisted baseline files")
	checkCommand.Flags().DurationVar(&checkTimeout, "timeout", fetch.DefaultTimeout, "HTTP fetch timeout")
	checkCommand.Flags().BoolVar(&checkEmail, "email", false, "Send an email alert when changes are detected")
	checkCommand.Flags().BoolVar(&checkBrowser, "use-browser", false, "Render the page in a headless browser (requires Chrome)")
	checkCommand.Flags().StringVar(&checkTo, "to", "", "Alert recipient (defaults to ROLEWATCH_RECIPIENT env var)")
	checkCommand.Flags().StringVar(&checkSMTPHost, "smtp-host", config.DefaultSMTPHost, "SMTP submission host")
	checkCommand.Flags().IntVar(&checkSMTPPort, "smtp-port", config.DefaultSMTPPort, "SMTP submission port")
	checkCommand.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Print debug output")

	rootCmd.AddCommand(checkCommand)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	log.SetReportTimestamp(true)
	log.SetTimeFormat(time.DateTime)
	if checkVerbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Config{
		URL:          checkURL,
		StateDir:     checkStateDir,
		Timeout:      checkTimeout,
		UseBrowser:   checkBrowser,
		EmailEnabled: checkEmail,
		SMTPHost:     checkSMTPHost,
		SMTPPort:     checkSMTPPort,
		Recipient:    checkTo,
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	return monitor.New(cfg).Run(cmd.Context())
}
