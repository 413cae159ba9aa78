package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/nk-nigeria/blackjack-cli/entity"
	"github.com/nk-nigeria/blackjack-cli/usecase/engine"
)

const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config represents the complete session configuration. Every block is
// optional.
type Config struct {
	Table   *TableSettings   `hcl:"table,block"`
	Storage *StorageSettings `hcl:"storage,block"`
	Log     *LogSettings     `hcl:"log,block"`
	Display *DisplaySettings `hcl:"display,block"`
}

// TableSettings contains shoe and house rules
type TableSettings struct {
	DeckCount       int    `hcl:"deck_count,optional"`
	ShufflePasses   int    `hcl:"shuffle_passes,optional"`
	CutCardMin      int    `hcl:"cut_card_min,optional"`
	CutCardMax      int    `hcl:"cut_card_max,optional"`
	StartingBalance int64  `hcl:"starting_balance,optional"`
	DealerName      string `hcl:"dealer_name,optional"`
	MaxPlayers      int    `hcl:"max_players,optional"`
	DealerStandsOn  int    `hcl:"dealer_stands_on,optional"`
}

// StorageSettings selects the player roster backend
type StorageSettings struct {
	Driver string `hcl:"driver,optional"`
	Path   string `hcl:"path,optional"`
}

// LogSettings contains logging settings. An empty file disables logging.
type LogSettings struct {
	Level string  `hcl:"level,optional"`
	File  *string `hcl:"file,optional"`
}

// DisplaySettings contains console settings
type DisplaySettings struct {
	TypeDelayMs int  `hcl:"type_delay_ms,optional"`
	JSONEvents  bool `hcl:"json_events,optional"`
}

func DefaultConfig() *Config {
	logFile := "blackjack.log"
	return &Config{
		Table: &TableSettings{
			DeckCount:       8,
			ShufflePasses:   1,
			CutCardMin:      60,
			CutCardMax:      80,
			StartingBalance: entity.DefaultStartingBalance,
			DealerName:      entity.DefaultDealerName,
			MaxPlayers:      entity.MaxPlayers,
			DealerStandsOn:  entity.DealerStands,
		},
		Storage: &StorageSettings{
			Driver: StorageSQLite,
			Path:   "players.db",
		},
		Log: &LogSettings{
			Level: "info",
			File:  &logFile,
		},
		Display: &DisplaySettings{
			TypeDelayMs: 10,
			JSONEvents:  false,
		},
	}
}

// Load reads the HCL file at filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Table == nil {
		c.Table = defaults.Table
	}
	if c.Storage == nil {
		c.Storage = defaults.Storage
	}
	if c.Log == nil {
		c.Log = defaults.Log
	}
	if c.Display == nil {
		c.Display = defaults.Display
	}

	t, dt := c.Table, defaults.Table
	if t.DeckCount == 0 {
		t.DeckCount = dt.DeckCount
	}
	if t.ShufflePasses == 0 {
		t.ShufflePasses = dt.ShufflePasses
	}
	if t.CutCardMin == 0 && t.CutCardMax == 0 {
		t.CutCardMin, t.CutCardMax = dt.CutCardMin, dt.CutCardMax
	}
	if t.StartingBalance == 0 {
		t.StartingBalance = dt.StartingBalance
	}
	if t.DealerName == "" {
		t.DealerName = dt.DealerName
	}
	if t.MaxPlayers == 0 {
		t.MaxPlayers = dt.MaxPlayers
	}
	if t.DealerStandsOn == 0 {
		t.DealerStandsOn = dt.DealerStandsOn
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = defaults.Storage.Driver
	}
	if c.Storage.Path == "" {
		c.Storage.Path = defaults.Storage.Path
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.File == nil {
		c.Log.File = defaults.Log.File
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	t := c.Table
	if t.DeckCount < 1 {
		return fmt.Errorf("deck count must be positive")
	}
	if t.ShufflePasses < 1 {
		return fmt.Errorf("shuffle passes must be positive")
	}
	if t.CutCardMin < 0 || t.CutCardMax < 0 {
		return fmt.Errorf("cut card bounds must not be negative")
	}
	if t.CutCardMax != 0 && t.CutCardMax < t.CutCardMin {
		return fmt.Errorf("cut card max must be at least cut card min")
	}
	shoeSize := t.DeckCount * entity.CardsPerDeck
	if t.CutCardMin >= shoeSize {
		return fmt.Errorf("cut card min %d must be below the shoe size %d", t.CutCardMin, shoeSize)
	}
	if t.CutCardMax >= shoeSize {
		return fmt.Errorf("cut card max %d must be below the shoe size %d", t.CutCardMax, shoeSize)
	}
	if t.StartingBalance <= 0 {
		return fmt.Errorf("starting balance must be positive")
	}
	if t.MaxPlayers < entity.MinPlayers {
		return fmt.Errorf("max players must be at least %d", entity.MinPlayers)
	}
	if t.DealerStandsOn < 2 || t.DealerStandsOn > entity.TwentyOne {
		return fmt.Errorf("dealer stands on must be between 2 and %d", entity.TwentyOne)
	}

	switch c.Storage.Driver {
	case StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}

	if c.Display.TypeDelayMs < 0 {
		return fmt.Errorf("type delay must not be negative")
	}
	return nil
}

// ShoeConfig is the engine's view of the table block.
func (c *Config) ShoeConfig() engine.ShoeConfig {
	return engine.ShoeConfig{
		DeckCount:     c.Table.DeckCount,
		ShufflePasses: c.Table.ShufflePasses,
		CutCardMin:    c.Table.CutCardMin,
		CutCardMax:    c.Table.CutCardMax,
	}
}
