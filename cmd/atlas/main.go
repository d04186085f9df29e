package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/osint-atlas/atlas/internal/auth"
	"github.com/osint-atlas/atlas/internal/catalog"
	"github.com/osint-atlas/atlas/internal/config"
	"github.com/osint-atlas/atlas/internal/export"
	"github.com/osint-atlas/atlas/internal/logging"
	"github.com/osint-atlas/atlas/internal/model"
	"github.com/osint-atlas/atlas/internal/picker"
	"github.com/osint-atlas/atlas/internal/review"
	"github.com/osint-atlas/atlas/internal/search"
	"github.com/osint-atlas/atlas/internal/session"
	"github.com/osint-atlas/atlas/internal/store"
	"github.com/osint-atlas/atlas/internal/tui"
)

const (
	authDelay   = 500 * time.Millisecond
	reviewDelay = 800 * time.Millisecond
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "export":
			// Export with optional path
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `atlas - OSINT tool directory

Usage:
  atlas                 Open interactive TUI
  atlas <query>         Quick search → select → open
  atlas export [path]   Export the catalog to CSV
  atlas help            Show this help

TUI Keybindings:
  Navigation:
    j/k         Move down/up
    gg/G        Jump to top/bottom

  Catalog:
    l/Enter/o   Open tool in browser
    /           Search name and description
    tab/S-tab   Cycle category
    s           Cycle sort mode
    F           Advanced filters
    X           Clear advanced filters
    e           Export visible tools to CSV
    r           Retry backend fetch

  Tools:
    f           Toggle favorite
    Y           Copy tool URL
    i           Show reviews
    R           Write a review

  Compare:
    c           Toggle compare mode
    space       Select tool (up to 3)
    v           Show comparison

  Other:
    a           Sign in / sign out
    ?           Show help overlay
    q           Quit

Data Storage:
  ~/.config/atlas/config.json
  ~/.config/atlas/atlas.db
`
	fmt.Print(help)
}

// bootstrap loads config, logging and the local store. Shared by all
// subcommands.
func bootstrap() (*config.Config, *zap.Logger, *store.Store) {
	cfgPath, err := config.DefaultFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.DataDir, os.Getenv("ATLAS_DEBUG") != "")

	st, err := store.Open(store.DefaultPath(cfg.DataDir), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data store: %v\n", err)
		os.Exit(1)
	}

	return cfg, log, st
}

// newResolver builds the catalog resolver from config. The remote source is
// only wired when the backend config validates; otherwise the resolver serves
// the static catalog.
func newResolver(cfg *config.Config, log *zap.Logger) (*catalog.Resolver, *catalog.Cache) {
	var remote catalog.Source
	if cfg.BackendURL != "" {
		if err := cfg.Validate(); err != nil {
			log.Warn("backend config invalid, using static catalog", zap.Error(err))
		} else {
			remote = catalog.NewRemoteSource(cfg.BackendURL, cfg.BackendKey)
		}
	}

	cache, err := catalog.NewCache(catalog.DefaultCachePath(cfg.DataDir))
	if err != nil {
		log.Warn("catalog cache unavailable", zap.Error(err))
		cache = nil
	}

	return catalog.NewResolver(remote, cache, log), cache
}

// runTUI runs the full interactive TUI.
func runTUI() {
	cfg, log, st := bootstrap()
	defer log.Sync()
	defer st.Close()

	resolver, cache := newResolver(cfg, log)
	if cache != nil {
		defer cache.Close()
	}

	app := tui.NewApp(tui.AppParams{
		Session:   session.New(st),
		Store:     st,
		Auth:      auth.NewMockProvider(st, authDelay),
		Submitter: review.NewSubmitter(st, reviewDelay),
		Resolver:  resolver,
		Opener:    openURL,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch performs a fuzzy search and opens the selected tool.
func runQuickSearch(query string) {
	cfg, log, st := bootstrap()
	defer log.Sync()
	defer st.Close()

	resolver, cache := newResolver(cfg, log)
	if cache != nil {
		defer cache.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	result := resolver.Resolve(ctx)

	results := search.FuzzyTools(result.Tools, query)
	if len(results) == 0 {
		fmt.Printf("No tools found for '%s'\n", query)
		os.Exit(0)
	}

	var selected *model.Tool

	if len(results) == 1 {
		// Single result - select it directly
		selected = results[0].Tool
		fmt.Printf("Opening: %s\n", selected.Name)
	} else {
		// Multiple results - show picker
		p := picker.New(results, query)
		finalModel, err := tea.NewProgram(p).Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.SelectedTool()
	}

	if selected == nil {
		os.Exit(0)
	}

	sess := session.New(st)
	sess.RecordView(selected.ID)

	if err := openURL(selected.URL); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening browser: %v\n", err)
	}
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	if outputPath == "" {
		var err error
		outputPath, err = export.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, log, st := bootstrap()
	defer log.Sync()
	defer st.Close()

	resolver, cache := newResolver(cfg, log)
	if cache != nil {
		defer cache.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	result := resolver.Resolve(ctx)

	if err := export.WriteFile(outputPath, result.Tools); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d tools to %s\n", len(result.Tools), outputPath)
}

// openURL opens a URL in the default browser.
func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd == nil {
		return fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}
	return cmd.Start()
}
