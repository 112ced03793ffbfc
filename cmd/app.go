// Package cmd implements the CLI application to plan trips.
package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/bluez/tripwise"
	"github.com/bluez/tripwise/config"
	"github.com/bluez/tripwise/fxrate"
	"github.com/bluez/tripwise/logger"
	"github.com/bluez/tripwise/store"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addTripCmd{},
	&tripsCmd{},
	&editTripCmd{},
	&deleteTripCmd{},

	&itineraryCmd{},
	&setDayCmd{},
	&setTransportCmd{},
	&addActivityCmd{},
	&checkCmd{},

	&budgetCmd{},
	&setBudgetCmd{},
	&addExpenseCmd{},
	&removeExpenseCmd{},
	&convertCmd{},

	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// keep the loaded configuration in a global.
var appConfig *config.Config

// loadConfig resolves the configuration once and initializes logging.
func loadConfig() (config.Config, error) {
	if appConfig != nil {
		return *appConfig, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	logger.Init(cfg.LogLevel)
	appConfig = &cfg
	return cfg, nil
}

// openStore picks the persistence backend from the configuration. The
// sqlite store must be closed by the caller; closeStore does that.
func openStore(cfg config.Config) (tripwise.Store, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		return store.OpenSQLite(filepath.Join(cfg.DataDir, "trips.db"))
	default:
		return store.NewFileStore(cfg.DataDir), nil
	}
}

func closeStore(s tripwise.Store) {
	if c, ok := s.(*store.SQLiteStore); ok {
		c.Close()
	}
}

// openPlanner is the central function to load the planner for a command.
func openPlanner() (*tripwise.Planner, tripwise.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	s, err := openStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("opening trip store: %w", err)
	}
	return tripwise.NewPlanner(s), s, nil
}

// newConverter builds the exchange-rate converter from the configuration.
func newConverter() (fxrate.Converter, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	p := fxrate.NewHTTPProvider(cfg.RateAPIURL, cfg.RateAPIKey)
	return fxrate.NewCache(p), nil
}

// parseDay converts the 1-based -day flag into a day index.
func parseDay(day int) (int, error) {
	if day < 1 {
		return 0, fmt.Errorf("-day is 1-based, got %d", day)
	}
	return day - 1, nil
}

// parseTimeOfDay parses an HH:MM flag onto the given calendar day.
func parseTimeOfDay(s string, on time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return time.Date(on.Year(), on.Month(), on.Day(), t.Hour(), t.Minute(), 0, 0, on.Location()), nil
}

// parseAmount parses a decimal money-amount flag.
func parseAmount(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}
