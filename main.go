package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/nk-nigeria/blackjack-cli/api"
	"github.com/nk-nigeria/blackjack-cli/entity"
	"github.com/nk-nigeria/blackjack-cli/pkg/config"
	"github.com/nk-nigeria/blackjack-cli/pkg/randutil"
	"github.com/nk-nigeria/blackjack-cli/playerdb"
	"github.com/nk-nigeria/blackjack-cli/usecase/processor"
	"github.com/nk-nigeria/blackjack-cli/usecase/service"
	"go.uber.org/zap"
)

var (
	titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#1B5E20")).
		Padding(0, 1).
		Bold(true)

	nameStyle = lipgloss.NewStyle().Width(20)
)

type Globals struct {
	Config   string `help:"Path to the HCL config file" default:"blackjack.hcl" type:"path"`
	Seed     int64  `help:"Random seed for the shoe (0 picks one)" default:"0"`
	DB       string `help:"Roster database path, overrides storage.path" name:"db"`
	LogLevel string `help:"Log level, overrides log.level" name:"log-level"`
}

type CLI struct {
	Globals

	Play     PlayCmd     `cmd:"" default:"1" help:"Play a session at the table"`
	Roster   RosterCmd   `cmd:"" help:"List saved players and balances"`
	Simulate SimulateCmd `cmd:"" help:"Play unattended rounds between bots"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Blackjack against the house, from the terminal."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func (g *Globals) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.DB != "" {
		cfg.Storage.Path = g.DB
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config %s: %w", g.Config, err)
	}
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func (g *Globals) seed() int64 {
	if g.Seed != 0 {
		return g.Seed
	}
	return randutil.NewSeed()
}

func openRegistry(cfg *config.Config, logger *zap.Logger) (*playerdb.Registry, error) {
	var store playerdb.Store
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		store = playerdb.NewMemoryStore()
	default:
		s, err := playerdb.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		store = s
	}
	return playerdb.NewRegistry(store, cfg.Table.StartingBalance, logger), nil
}

func tableOptions(cfg *config.Config) service.TableOptions {
	return service.TableOptions{
		Shoe:           cfg.ShoeConfig(),
		DealerName:     cfg.Table.DealerName,
		DealerStandsOn: cfg.Table.DealerStandsOn,
		MaxPlayers:     cfg.Table.MaxPlayers,
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

type PlayCmd struct {
	Bots int `help:"Number of automated players to seat" default:"0"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	defer logger.Sync()
	if c.Bots < 0 || c.Bots > cfg.Table.MaxPlayers {
		return fmt.Errorf("bots must be between 0 and %d", cfg.Table.MaxPlayers)
	}
	registry, err := openRegistry(cfg, logger)
	if err != nil {
		return err
	}
	defer registry.Close()

	seed := g.seed()
	logger.Info("starting session", zap.Int64("seed", seed), zap.Int("bots", c.Bots))
	rng := randutil.New(seed)

	delay := time.Duration(cfg.Display.TypeDelayMs) * time.Millisecond
	console := api.NewConsole(os.Stdin, os.Stdout, quartz.NewReal(), delay)
	var presenter processor.Presenter = console
	if cfg.Display.JSONEvents {
		presenter = api.NewJSONEventWriter(os.Stdout, logger)
	}

	console.Banner(api.TableTitle)
	if console.AskYesNo(entity.NewQuestion(entity.QuestionShowRules, nil, 0)) {
		console.ShowRules()
	}

	lower := int64(1)
	if c.Bots > 0 {
		lower = 0
	}
	humans := console.AskInt(entity.NewQuestion(entity.QuestionPlayerCount, nil, 0), lower, int64(cfg.Table.MaxPlayers-c.Bots))
	bots := service.BotNames(c.Bots)
	taken := append([]string{}, bots...)
	names := make([]string, 0, cfg.Table.MaxPlayers)
	for i := 1; i <= int(humans); i++ {
		name, ok := console.AskName(i, taken)
		if !ok {
			return nil
		}
		names = append(names, name)
		taken = append(taken, name)
	}

	decisions := processor.NewRoutedDecisions(console)
	names = append(names, service.AddBots(decisions, c.Bots, rng)...)

	ctx, cancel := signalContext()
	defer cancel()
	session := service.NewSession(tableOptions(cfg), rng, decisions, presenter, registry, logger)
	return session.Run(ctx, names)
}

type RosterCmd struct{}

func (c *RosterCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	defer logger.Sync()
	registry, err := openRegistry(cfg, logger)
	if err != nil {
		return err
	}
	defer registry.Close()

	records, err := registry.List(context.Background())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No saved players.")
		return nil
	}
	fmt.Println(titleStyle.Render(" Roster "))
	for _, rec := range records {
		fmt.Printf("%s $%d\n", nameStyle.Render(rec.Name), rec.Balance)
	}
	return nil
}

type SimulateCmd struct {
	Rounds int  `help:"Rounds to play" default:"100"`
	Bots   int  `help:"Number of bots at the table" default:"3"`
	JSON   bool `help:"Write every event as JSON" name:"json"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	defer logger.Sync()
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be positive")
	}
	if c.Bots < 1 || c.Bots > cfg.Table.MaxPlayers {
		return fmt.Errorf("bots must be between 1 and %d", cfg.Table.MaxPlayers)
	}

	seed := g.seed()
	logger.Info("starting simulation", zap.Int64("seed", seed), zap.Int("rounds", c.Rounds), zap.Int("bots", c.Bots))
	rng := randutil.New(seed)
	registry := playerdb.NewRegistry(playerdb.NewMemoryStore(), cfg.Table.StartingBalance, logger)
	defer registry.Close()

	limit := service.NewRoundLimit(c.Rounds)
	decisions := processor.NewRoutedDecisions(limit)
	names := service.AddBots(decisions, c.Bots, rng)

	var presenter processor.Presenter
	if c.JSON {
		presenter = api.NewJSONEventWriter(os.Stdout, logger)
	}

	ctx, cancel := signalContext()
	defer cancel()
	session := service.NewSession(tableOptions(cfg), rng, decisions, presenter, registry, logger)
	if err := session.Run(ctx, names); err != nil {
		return err
	}
	if c.JSON {
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf(" %d rounds, seed %d ", session.State().Round(), seed)))
	for _, p := range session.State().GetPlayers() {
		fmt.Printf("%s $%d (%+d)\n", nameStyle.Render(p.Name()), p.Balance(), p.Balance()-cfg.Table.StartingBalance)
	}
	return nil
}
