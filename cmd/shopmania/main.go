// ShopMania: build a meal plan from a cook book and turn it into one
// merged shopping list.
//
// Usage:
//
//	shopmania [--verbose] [--quiet] [--plain] [--config file] [--log-file file]
//	shopmania generate <recipe>...
//	shopmania catalog [--show recipe]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/x/term"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/shopmania/internal/config"
	"github.com/hammamikhairi/shopmania/internal/conversation"
	"github.com/hammamikhairi/shopmania/internal/display"
	"github.com/hammamikhairi/shopmania/internal/engine"
	"github.com/hammamikhairi/shopmania/internal/logger"
	"github.com/hammamikhairi/shopmania/internal/recipe"
	"github.com/hammamikhairi/shopmania/internal/storage"
)

// options holds the persistent command-line flags. Flags that were set win
// over config file and environment values.
type options struct {
	configPath string
	logFile    string
	verbose    bool
	quiet      bool
	plain      bool
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "shopmania",
		Short:        "Turn a meal plan into a shopping list",
		Long:         "Pick recipes from a cook book into a meal plan, then generate one merged shopping list from it.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: ./shopmania.* or $XDG_CONFIG_HOME/shopmania/shopmania.*)")
	flags.StringVar(&opts.logFile, "log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable verbose/debug logging")
	flags.BoolVar(&opts.quiet, "quiet", false, "disable all logging")
	flags.BoolVar(&opts.plain, "plain", false, "read commands line by line from stdin without the full-screen UI")

	root.AddCommand(newGenerateCmd(opts), newCatalogCmd(opts))
	return root
}

// app is everything a command needs, built from config and flags.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	store  *storage.MemoryStore
	engine *engine.Engine
	close  func()
}

func setup(cmd *cobra.Command, opts *options) (*app, error) {
	cfg, cfgFile, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("plain") {
		cfg.UI.Plain = opts.plain
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		level = logger.LevelVerbose
	}
	if opts.quiet {
		level = logger.LevelOff
	}

	logOut, closeLog := openLog(cfg.Log.File, cmd.ErrOrStderr())
	log := logger.New(level, logOut)
	if cfgFile != "" {
		log.Info("loaded config from %s", cfgFile)
	}

	extra, err := cfg.CatalogRecipes()
	if err != nil {
		closeLog()
		return nil, err
	}
	catalogOpts := []recipe.CatalogOption{recipe.WithRecipes(extra...)}
	if !cfg.Catalog.Builtin {
		catalogOpts = append(catalogOpts, recipe.WithoutBuiltins())
	}

	catalog := recipe.NewCatalog(log, catalogOpts...)
	store := storage.NewMemoryStore(log)

	return &app{
		cfg:    cfg,
		log:    log,
		store:  store,
		engine: engine.New(catalog, store, log),
		close:  closeLog,
	}, nil
}

// openLog directs logs to a file by default so the prompt stays clean.
// "stderr" or an empty path logs to the console.
func openLog(path string, stderr io.Writer) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return stderr, func() {}
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return stderr, func() {}
	}
	return f, func() { f.Close() }
}

func runInteractive(cmd *cobra.Command, opts *options) error {
	a, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cli := &cliApp{
		engine: a.engine,
		parser: conversation.NewKeywordParser(a.log),
		log:    a.log,
	}

	plain := a.cfg.UI.Plain || !term.IsTerminal(os.Stdin.Fd())
	if plain {
		cli.ui = display.NewPlain(cmd.OutOrStdout())
		cli.run(ctx, display.Lines(ctx, cmd.InOrStdin()))
		return nil
	}

	ui := display.NewUI(a.store)
	cli.ui = ui

	if a.cfg.UI.Banner {
		fmt.Println(display.RenderBanner(0))
	}
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	go func() {
		ui.WaitReady()
		cli.run(ctx, ui.InputChan())
		ui.Quit()
	}()

	// Bubble Tea owns the terminal until quit.
	if err := ui.Run(); err != nil {
		a.log.Error("display: %v", err)
		return err
	}
	return nil
}
