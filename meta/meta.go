// meta/meta.go
package meta

import "tictactoe/game"

// OUTPUT_DIR is the default base directory for experiment CSV files.
const OUTPUT_DIR = "results"

// MATCH_GAMES is the default number of games per matchup.
const MATCH_GAMES = 10

// SEED seeds the random agents.
const SEED = 1

const (
	e = game.Empty
	x = game.First
	o = game.Second
)

// COMPARISON_POSITIONS are the positions the engines are compared on:
// empty board, early game and mid game.
var COMPARISON_POSITIONS = [][game.Size][game.Size]game.Mark{
	{
		{e, e, e},
		{e, e, e},
		{e, e, e},
	},
	{
		{x, e, e},
		{e, o, e},
		{e, e, e},
	},
	{
		{x, o, x},
		{o, x, e},
		{e, e, e},
	},
}
