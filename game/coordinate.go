package game

import "fmt"

// Coordinate is a grid position. Two coordinates are equal iff X and Y match,
// so values can be compared with == and used as map keys.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// C is shorthand for Coordinate{X: x, Y: y}. No range validation is done here.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
