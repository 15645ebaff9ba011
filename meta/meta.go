// meta/meta.go
package meta

// BOARD_HEIGHT is the number of rows (valid x values) on the default board.
const BOARD_HEIGHT = 8

// BOARD_WIDTH is the number of columns (valid y values) on the default board.
const BOARD_WIDTH = 8

// TOTAL_KNIGHTS is the number of knights in the standard layout, split between players.
const TOTAL_KNIGHTS = 2

// TOTAL_BISHOPS is the number of bishops in the standard layout, split between players.
const TOTAL_BISHOPS = 2

const PLAYER_ONE = "Player1"
const PLAYER_TWO = "Player2"

// MAX_TURNS caps a self-play game.
const MAX_TURNS = 300

// GAMES is the default number of self-play games per experiment.
const GAMES = 10
