// meta/meta.go
package meta

// SEARCH_DEPTH is the default alpha-beta search depth in plies.
const SEARCH_DEPTH = 3

// GAMES is the default number of games per match.
const GAMES = 10

// DEFAULT_ADDR is where the agent server listens by default.
const DEFAULT_ADDR = ":8080"

// OUTPUT_DIR is where match records are written.
const OUTPUT_DIR = "experiments"

// MAX_MOVES bounds a single game in the local engine, on top of the draw rule.
const MAX_MOVES = 1000
