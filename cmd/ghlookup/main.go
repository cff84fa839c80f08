package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/yourusername/ghlookup/internal/adapter/config"
	"github.com/yourusername/ghlookup/internal/adapter/github"
	"github.com/yourusername/ghlookup/internal/domain"
	"github.com/yourusername/ghlookup/internal/logging"
	"github.com/yourusername/ghlookup/internal/ui"
	"github.com/yourusername/ghlookup/internal/ui/theme"
	"github.com/yourusername/ghlookup/internal/usecase"
)

var version = "0.1.0"

// errNoticeShown marks a failed lookup whose notice was already printed.
var errNoticeShown = errors.New("lookup failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(os.Stdout, os.Stderr)
	if err := a.execute(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, errNoticeShown) {
			ui.PrintError(os.Stderr, err.Error())
		}
		stop()
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	themeName  string

	stdout io.Writer
	stderr io.Writer

	cfgManager *config.Manager
	cfg        *domain.Config
	logCloser  io.Closer
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

// execute runs the command line in args. The log file is released on every
// path, including failed subcommands, which cobra leaves without post-run hooks.
func (a *app) execute(ctx context.Context, args []string) (err error) {
	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	defer func() {
		if cerr := a.teardown(); err == nil {
			err = cerr
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ghlookup",
		Short: "Look up GitHub followers, repository creation dates and stats",
		Long: `ghlookup queries the public GitHub REST API for one of three facts:
an account's followers and join date, a repository's creation date, or a
repository's fork and star counts. Without a subcommand it starts the
interactive lookup form.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		},
	}
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default <user config dir>/ghlookup/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.themeName, "theme", "", "UI theme name")

	rootCmd.AddCommand(a.lookupCmd())
	rootCmd.AddCommand(a.configCmd())

	return rootCmd
}

// setup loads the configuration, opens the log file and selects the theme.
func (a *app) setup() error {
	mgr, err := config.NewManager(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	a.cfgManager = mgr

	cfg, err := mgr.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	if a.logLevel != "" {
		level = a.logLevel
	}

	closer, err := logging.OpenFile(cfg.Log.File, logging.LogLevel(level))
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	a.logCloser = closer

	themeName := cfg.UI.Theme
	if a.themeName != "" {
		themeName = a.themeName
	}
	if !theme.Exists(themeName) {
		logging.Warn("unknown theme, using default", "theme", themeName)
	}
	theme.SetGlobal(themeName)

	logging.Debug("configuration loaded", "path", mgr.ConfigPath(), "base_url", cfg.API.BaseURL, "mode", cfg.UI.DefaultMode)
	return nil
}

func (a *app) teardown() error {
	if a.logCloser == nil {
		return nil
	}
	logging.SetupLogger(io.Discard, logging.LevelInfo)
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}

func (a *app) newUseCase() (*usecase.LookupUseCase, error) {
	client, err := github.NewClient(a.cfg.APIBaseURL(), nil)
	if err != nil {
		return nil, err
	}
	loc, err := a.cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}
	return usecase.NewLookupUseCase(client, loc), nil
}

func (a *app) runTUI(ctx context.Context) error {
	uc, err := a.newUseCase()
	if err != nil {
		return err
	}

	logging.Info("starting lookup form", "version", version, "mode", a.cfg.Mode())
	model := ui.NewLookupModel(ctx, uc, a.cfg.Mode())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logging.Error("lookup form exited with error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func (a *app) lookupCmd() *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "lookup [--mode MODE] INPUT",
		Short: "Run one lookup and print the result",
		Long: `Runs a single lookup without the interactive form and prints the result
lines. INPUT is a username or profile URL for the followers mode, or a
repository URL for repoDate and repoStats. On failure the notice is printed
to stderr and the exit status is 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := a.cfg.Mode()
			if modeFlag != "" {
				m, err := domain.ParseMode(modeFlag)
				if err != nil {
					return err
				}
				mode = m
			}
			return a.runLookup(cmd.Context(), mode, args[0])
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "lookup mode: followers, repoDate, repoStats (default from config)")

	return cmd
}

func (a *app) runLookup(ctx context.Context, mode domain.Mode, input string) error {
	uc, err := a.newUseCase()
	if err != nil {
		return err
	}

	resp, err := uc.Execute(ctx, usecase.LookupRequest{Mode: mode, Input: input})
	if err != nil {
		fmt.Fprintln(a.stderr, domain.Notice(err))
		return errNoticeShown
	}

	ui.PrintResult(a.stdout, resp.Result)
	return nil
}

func (a *app) configCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Prints the effective configuration and the file it was read from.
With --init a config file holding the defaults is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initFile {
				return a.initConfig()
			}
			ui.PrintConfig(a.stdout, a.cfg, a.cfgManager.ConfigPath(), a.cfgManager.Exists())
			return nil
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "write a config file with the default settings")

	return cmd
}

func (a *app) initConfig() error {
	if a.cfgManager.Exists() {
		return fmt.Errorf("config file already exists: %s", a.cfgManager.ConfigPath())
	}
	if err := a.cfgManager.Save(domain.NewDefaultConfig()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	ui.PrintSuccess(a.stdout, "Config written to "+a.cfgManager.ConfigPath())
	return nil
}
