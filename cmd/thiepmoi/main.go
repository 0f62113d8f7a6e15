package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/lamvt/thiepmoi/internal/admin"
	"github.com/lamvt/thiepmoi/internal/config"
	"github.com/lamvt/thiepmoi/internal/i18n"
	"github.com/lamvt/thiepmoi/internal/tui"
	"github.com/lamvt/thiepmoi/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; real config still comes from file and env.
	_ = godotenv.Load()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("thiepmoi " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "admin":
			return runAdmin()
		}
	}

	cfg, loc, err := loadSetup()
	if err != nil {
		return err
	}

	c := client.New(cfg.APIBaseURL)
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
	app := tui.NewApp(c, loc, rng)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func runAdmin() error {
	cfg, loc, err := loadSetup()
	if err != nil {
		return err
	}

	c := client.New(cfg.APIBaseURL)
	app := admin.NewApp(c, loc, cfg.AdminCode)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("admin tui error: %w", err)
	}
	return nil
}

func loadSetup() (config.Config, *i18n.Localizer, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, fmt.Errorf("invalid config: %w", err)
	}
	loc := i18n.NewTranslator(cfg.Locale).Localizer(cfg.Locale)
	return cfg, loc, nil
}

func printHelp() {
	fmt.Print(`thiepmoi - graduation invitation client

Usage:
  thiepmoi            open the guest invitation
  thiepmoi admin      open the admin dashboard
  thiepmoi version    print the version

Configuration (~/.thiepmoi/config.yaml, or env):
  api_base_url   THIEPMOI_API_URL      invitation service base URL
  locale         THIEPMOI_LOCALE       vi (default) or en
  admin_code     THIEPMOI_ADMIN_CODE   dashboard passcode
`)
}
