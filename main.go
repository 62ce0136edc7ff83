package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/CrestNiraj12/redcatch/infra/config"
	"github.com/CrestNiraj12/redcatch/infra/reddit"
	"github.com/CrestNiraj12/redcatch/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	var showVersion bool

	cmd := &cobra.Command{
		Use:   "redcatch",
		Short: "Browse reddit from the terminal",
		Long: `redcatch is a read-only reddit viewer for the terminal.

Browse curated categories, search posts and read comment threads
without leaving the shell. Settings come from flags, REDCATCH_*
environment variables, a .env file or ~/.config/redcatch/config.yaml.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
				fmt.Fprintf(cmd.OutOrStdout(), "redcatch %s\ncommit: %s\nbuilt: %s\n", v, c, d)
				return nil
			}
			return run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&showVersion, "version", "v", false, "print version and exit")
	flags.String("config", "", "config file (default is $HOME/.config/redcatch/config.yaml)")
	flags.StringP("category", "c", "", "initial category: popular, all, gaming, sports, news, technology, programming")
	flags.String("base-url", "", "reddit base URL")
	flags.String("log-file", "", "write logs to this file")
	return cmd
}

func run(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	client := reddit.NewClient(cfg.BaseURL,
		reddit.WithUserAgent(cfg.UserAgent),
		reddit.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		reddit.WithRateLimit(cfg.RateInterval, cfg.RateBurst),
		reddit.WithLogger(logger),
	)

	root := tui.NewApp(tui.Deps{
		Reddit:           reddit.NewService(client),
		Category:         cfg.StartCategory(),
		RestrictSearch:   cfg.RestrictSearch,
		SearchDebounce:   cfg.SearchDebounce,
		ErrorDismiss:     cfg.ErrorDismiss,
		CommentCacheSize: cfg.CommentCacheSize,
		Logger:           logger,
	})

	logger.Info("starting", "category", string(cfg.StartCategory()), "base_url", cfg.BaseURL)
	p := tea.NewProgram(root, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("redcatch: %w", err)
	}
	return nil
}

// newLogger writes to the configured log file. The terminal belongs to the
// UI, so without a file logs are discarded.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		if t := strings.TrimSpace(settings["vcs.time"]); t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
