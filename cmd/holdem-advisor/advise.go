package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/holdem-advisor/cmd/holdem-advisor/shared"
	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/consensus"
	"github.com/lox/holdem-advisor/internal/oracle"
	"github.com/lox/holdem-advisor/internal/service"
)

// AdviseCmd creates a throwaway hand and runs one recommendation round
// against the configured oracle. Useful for smoke-testing a model or
// replaying a spot from the command line.
type AdviseCmd struct {
	HoleCards     string   `kong:"required,help='Hole cards, e.g. ♠A♥K'"`
	Board         string   `kong:"help='Community cards (empty for preflop, 3/4/5 cards otherwise)'"`
	PlayerAddress string   `kong:"default='cli',help='Player identity recorded on the hand'"`
	Position      int      `kong:"default='5',help='Table position (0-9)'"`
	Players       int      `kong:"default='6',help='Number of active players'"`
	Pot           int      `kong:"default='15',help='Current pot size'"`
	SmallBlind    int      `kong:"default='5',help='Small blind amount'"`
	BigBlind      int      `kong:"default='10',help='Big blind amount'"`
	Stack         int      `kong:"default='1000',help='Player stack'"`
	CurrentBet    int      `kong:"default='0',help='Current bet to call'"`
	Config        string   `kong:"default='advisor.hcl',help='Path to HCL config file'"`
	Scripted      []string `kong:"help='Canned oracle responses instead of a live endpoint (leader first)'"`
	Debug         bool     `kong:"help='Enable debug logging'"`
}

func (c *AdviseCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := service.LoadConfig(c.Config)
	if err != nil {
		return err
	}

	var o oracle.Oracle
	validators := cfg.Oracle.Validators
	if len(c.Scripted) > 0 {
		o = oracle.NewScripted(c.Scripted...)
		if len(c.Scripted) > 1 {
			validators = len(c.Scripted) - 1
		}
	} else {
		o = oracle.NewHTTPOracle(oracle.HTTPConfig{
			URL:    cfg.Oracle.URL,
			Model:  cfg.Oracle.Model,
			APIKey: os.Getenv(cfg.Oracle.APIKeyEnv),
		})
		if timeout := cfg.OracleTimeout(); timeout > 0 {
			o = oracle.WithDeadline(o, quartz.NewReal(), timeout)
		}
	}

	coordinator := consensus.NewCoordinator(o,
		consensus.WithValidators(validators),
		consensus.WithLogger(logger),
	)
	registry := advisor.NewRegistry(coordinator, logger)

	created, err := registry.CreateHand(advisor.CreateParams{
		PlayerAddress: c.PlayerAddress,
		HoleCards:     c.HoleCards,
		Position:      c.Position,
		NumPlayers:    c.Players,
		PotSize:       c.Pot,
		SmallBlind:    c.SmallBlind,
		BigBlind:      c.BigBlind,
		Stack:         c.Stack,
		CurrentBet:    c.CurrentBet,
	})
	if err != nil {
		return err
	}

	if c.Board != "" {
		if _, err := registry.AdvanceStage(created.ID, c.Board, c.Pot, c.CurrentBet, nil); err != nil {
			return err
		}
	}

	result, err := registry.RequestAction(context.Background(), created.ID)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
