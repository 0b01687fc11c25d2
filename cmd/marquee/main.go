package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/marquee/internal/cache"
	"github.com/mmcdole/marquee/internal/config"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/logging"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/store"
	"github.com/mmcdole/marquee/internal/tmdb"
	"github.com/mmcdole/marquee/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

func main() {
	var (
		showVersion   bool
		configFile    string
		refreshGenres bool
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configFile, "config", "", "path to config file")
	flag.BoolVar(&refreshGenres, "refresh-genres", false, "discard the cached genre catalog")
	flag.Parse()

	if showVersion {
		fmt.Printf("marquee %s\n", Version)
		return
	}

	if err := run(configFile, refreshGenres); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string, refreshGenres bool) error {
	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, closer, err := logging.Setup(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = logging.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting marquee", "version", Version)

	// Check if configured
	if !cfg.IsConfigured() {
		if err := runSetupFlow(cfg, configFile, logger); err != nil {
			return err
		}
	}

	client, err := newClient(cfg, cfg.TMDB.APIKey, logger)
	if err != nil {
		return fmt.Errorf("failed to create api client: %w", err)
	}

	genres, err := cache.NewGenreStore(cfg.Cache.Dir, cfg.TMDB.BaseURL)
	if err != nil {
		logger.Warn("genre cache unavailable, using memory", "dir", cfg.Cache.Dir, "error", err)
		genres, _ = cache.NewGenreStore("", "")
	}
	defer genres.Close()

	catalog := service.NewCatalogService(client, genres, cfg.Cache.GenreTTL, logger)
	if refreshGenres {
		catalog.RefreshGenres()
	}

	st := store.New(catalog, logger, store.Options{
		MinLoading:        cfg.UI.MinLoading,
		PaginationLockout: cfg.UI.PaginationLockout,
		RequestTimeout:    cfg.UI.RequestTimeout,
	})

	model := tui.NewModel(st, tui.Options{
		SearchDebounce: cfg.UI.SearchDebounce,
		SlideInterval:  cfg.UI.SlideInterval,
		TrendingWindow: domain.TimeWindow(cfg.UI.TrendingWindow),
		TrendingLimit:  cfg.UI.TrendingLimit,
		SimilarLimit:   cfg.UI.SimilarLimit,
		ImageBaseURL:   cfg.TMDB.ImageBaseURL,
	})

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

func newClient(cfg *config.Config, apiKey string, logger *slog.Logger) (*tmdb.Client, error) {
	return tmdb.NewClient(cfg.TMDB.BaseURL, apiKey, logger,
		tmdb.WithTimeout(cfg.TMDB.Timeout),
		tmdb.WithRetries(cfg.TMDB.Retries),
		tmdb.WithRateLimit(cfg.TMDB.RateLimit, cfg.TMDB.RateBurst),
		tmdb.WithLanguage(cfg.TMDB.Language),
	)
}

// runSetupFlow asks for an API key until one is accepted, then saves it
func runSetupFlow(cfg *config.Config, configFile string, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to Marquee!")
	fmt.Println()
	fmt.Println("Marquee needs a TMDB API key (https://www.themoviedb.org/settings/api).")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		apiKey, err := readAPIKey(reader)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if apiKey == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}

		client, err := newClient(cfg, apiKey, logger)
		if err != nil {
			return fmt.Errorf("failed to create api client: %w", err)
		}

		if err := verifyWithSpinner(client); err != nil {
			fmt.Printf("✗ %v\n", err)
			if errors.Is(err, domain.ErrUnauthorized) {
				fmt.Println("Please check the key and try again.")
				fmt.Println()
				continue
			}
			return err
		}

		cfg.TMDB.APIKey = apiKey
		break
	}

	if err := config.Save(cfg, configFile); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	return nil
}

// readAPIKey reads the key without echo when stdin is a terminal
func readAPIKey(reader *bufio.Reader) (string, error) {
	fmt.Print("Enter your API key: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// verifyWithSpinner checks the key against the genre endpoint with a visual spinner
func verifyWithSpinner(client *tmdb.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	resultCh := make(chan error, 1)

	// Start verification in background
	go func() {
		_, err := client.Genres(ctx)
		resultCh <- err
	}()

	frames := spinner.Dot.Frames
	frame := 0

	fmt.Printf("\r%s Checking API key...", frames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Print(clearSpinnerLine)
			if err != nil {
				return fmt.Errorf("could not verify API key: %w", err)
			}
			fmt.Println("✓ API key accepted")
			return nil

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Checking API key...", frames[frame%len(frames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("verification timed out")
		}
	}
}
