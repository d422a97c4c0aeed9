package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"tablut/experiments/metrics"
	"tablut/game"
	"tablut/meta"
	"tablut/searcher/agent"
	"tablut/utils"
)

// localEngine plays a game between in-process agents, one per side.
type localEngine struct {
	state    *game.BoardState
	agents   map[game.Player]agent.Agent
	maxMoves int
}

func LocalEngine(state *game.BoardState, agents map[game.Player]agent.Agent) Engine {
	if agents[game.Muscovite] == nil || agents[game.Swede] == nil {
		panic("need an agent for each side")
	}
	return &localEngine{
		state:    state.Copy(),
		agents:   agents,
		maxMoves: meta.MAX_MOVES,
	}
}

// Run executes the game loop until the game ends. Agents never see the
// engine's own state, only copies of it.
func (e *localEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.state.TurnPlayer().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.state.TurnPlayer())

	step := 1
	for e.state.Winner() == game.NoWinner && step <= e.maxMoves {
		player := e.state.TurnPlayer()
		move, searchMetric := e.findMove(player)

		if err := e.state.Apply(move); err != nil {
			// findMove only returns legal moves
			panic(err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Str("move", move.String()).Int("score", searchMetric.Score).Msg("move played")
		step++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Winner = e.state.Winner().String()

	if e.state.Winner() == game.NoWinner {
		log.Warn().Msgf("stopped after %d moves without a result", e.maxMoves)
	} else {
		log.Info().Msgf("game ended after %d moves with winner: %s", gameMetric.TotalMoves, gameMetric.Winner)
	}

	return gameMetric.Winner, gameMetric, moveMetrics
}

// findMove asks the agent of player for a move, falling back to the first
// legal move when the agent fails or answers with an illegal one.
func (e *localEngine) findMove(player game.Player) (game.GameMove, metrics.SearchMetric) {
	legal := e.state.LegalMoves()
	if len(legal) == 0 {
		panic("no legal moves in an unfinished game")
	}

	candidate, searchMetric, err := e.agents[player].FindMove(e.state.Copy())
	if err != nil {
		log.Warn().Err(err).Str("player", player.String()).Msg("agent failed, forcing first legal move")
		return legal[0].(game.GameMove), searchMetric
	}
	if !utils.Contains(legal, game.Move(candidate)) {
		log.Warn().Str("player", player.String()).Str("move", candidate.String()).Msg("agent returned an illegal move, forcing first legal move")
		return legal[0].(game.GameMove), searchMetric
	}
	return candidate, searchMetric
}
