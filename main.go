package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"tablut/communication/server"
	"tablut/config"
	"tablut/experiments"
	"tablut/game"
	"tablut/searcher"
	"tablut/searcher/agent"
)

const usage = `usage: tablut [-config file] <command> [flags]

commands:
  serve   serve an alpha-beta agent over HTTP
  match   play a match between the two configured agents
  move    read a board from stdin and print the searched move
`

func main() {
	configPath := flag.String("config", "", "YAML config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Log.Setup()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	args := flag.Args()[1:]
	switch flag.Arg(0) {
	case "serve":
		err = runServe(cfg, args)
	case "match":
		err = runMatch(cfg, args)
	case "move":
		err = runMove(cfg, args, os.Stdin, os.Stdout)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", flag.Arg(0))
	}
}

func runServe(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", cfg.Server.Addr, "listen address")
	depth := fs.Int("depth", cfg.Server.Depth, "search depth in plies")
	_ = fs.Parse(args)

	ab := searcher.NewAlphaBeta(searcher.WithDepth(*depth), searcher.WithMetrics())
	return server.NewServer(agent.NewAlphaBetaAgent(ab)).ListenAndServe(*addr)
}

func runMatch(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	games := fs.Int("games", cfg.Match.Games, "number of games")
	out := fs.String("out", cfg.Match.OutputDir, "directory for match records")
	_ = fs.Parse(args)

	match := cfg.Match
	match.Games = *games
	match.OutputDir = *out

	result, err := experiments.RunMatch(match)
	if err != nil {
		return err
	}
	log.Info().
		Interface("wins", result.Wins).
		Int("draws", result.Draws).
		Int("unfinished", result.Unknown).
		Str("records", result.BaseDir).
		Msg("match complete")
	return nil
}

// runMove reads nine board rows from in and writes the chosen move to out.
func runMove(cfg *config.Config, args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("move", flag.ExitOnError)
	turn := fs.String("turn", "muscovite", "side to move")
	turns := fs.Int("turns", 0, "full turns already played")
	depth := fs.Int("depth", cfg.Server.Depth, "search depth in plies")
	_ = fs.Parse(args)

	player, err := game.ParsePlayer(*turn)
	if err != nil {
		return err
	}

	var rows []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() && len(rows) < game.BoardSize {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			rows = append(rows, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read board: %w", err)
	}

	state, err := game.ParseBoard(rows, player)
	if err != nil {
		return err
	}
	if *turns < 0 {
		return fmt.Errorf("%w: negative turn number %d", game.ErrInvalidBoard, *turns)
	}
	state.Turns = *turns

	ab := searcher.NewAlphaBeta(searcher.WithDepth(*depth), searcher.WithMetrics())
	move, metric, err := agent.NewAlphaBetaAgent(ab).FindMove(state)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s score=%d evaluations=%d\n", move, metric.Score, metric.Evaluations)
	return err
}
