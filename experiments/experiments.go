package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"tablut/config"
	"tablut/engine"
	"tablut/experiments/metrics"
	"tablut/game"
	"tablut/searcher/agent"
)

// Result summarises a match from the point of view of each agent ID.
type Result struct {
	Wins    map[int]int
	Draws   int
	Unknown int // games stopped by the move limit
	BaseDir string
}

// RunMatch plays cfg.Games games between the two configured agents,
// alternating which one plays the Muscovites, and writes the records
// under cfg.OutputDir.
func RunMatch(cfg config.Match) (Result, error) {
	if len(cfg.Agents) != 2 {
		return Result{}, fmt.Errorf("%w: a match needs exactly two agents", config.ErrInvalidConfig)
	}
	if cfg.Agents[0].ID == cfg.Agents[1].ID {
		return Result{}, fmt.Errorf("%w: agents share id %d", config.ErrInvalidConfig, cfg.Agents[0].ID)
	}
	if cfg.Games <= 0 {
		return Result{}, fmt.Errorf("%w: match games must be positive", config.ErrInvalidConfig)
	}

	result := Result{Wins: map[int]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s match...", cfg.Name)

	for i := 0; i < cfg.Games; i++ {
		// Alternate sides so neither agent always attacks
		muscovite, swede := cfg.Agents[0], cfg.Agents[1]
		if i%2 == 1 {
			muscovite, swede = swede, muscovite
		}

		log.Info().Msgf("starting game %d of %d with muscovite=%d swede=%d...", i+1, cfg.Games, muscovite.ID, swede.ID)

		winner, gameMetric, moveMetrics, err := runGame(muscovite, swede)
		if err != nil {
			return Result{}, err
		}

		id := i + 1
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Agent1:     muscovite.ID,
			Agent2:     swede.ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		switch winner {
		case game.Muscovite.String():
			result.Wins[muscovite.ID]++
		case game.Swede.String():
			result.Wins[swede.ID]++
		case game.Draw.String():
			result.Draws++
		default:
			result.Unknown++
		}

		log.Info().Msgf("completed game %d of %d with winner: %s", i+1, cfg.Games, winner)
	}

	log.Info().Msgf("completed %s match", cfg.Name)

	baseDir, err := writeRecords(cfg, gameRecords, moveRecords)
	if err != nil {
		return Result{}, err
	}
	result.BaseDir = baseDir
	return result, nil
}

func writeRecords(cfg config.Match, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create match writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.BaseDir(), nil
}

// runGame plays a single game from the opening position.
func runGame(muscovite, swede config.Agent) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	attacker, err := agent.New(muscovite)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	defender, err := agent.New(swede)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(game.NewBoardState(), map[game.Player]agent.Agent{
		game.Muscovite: attacker,
		game.Swede:     defender,
	})
	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}
