package game

import "minichess/utils"

// NewStandardRules returns the rule set used unless a validator is told otherwise.
func NewStandardRules() Rules {
	return Rules{
		Knight: PermissiveKnightRule,
		Bishop: BishopRule,
	}
}

// BishopRule accepts any non-zero diagonal displacement.
func BishopRule(start, end Coordinate) bool {
	return start != end && IsDiagonalMove(start, end)
}

// PermissiveKnightRule accepts every displacement. It is a placeholder for the
// knight and stays the default; LShapedKnightRule is the opt-in real rule.
func PermissiveKnightRule(start, end Coordinate) bool {
	return true
}

// LShapedKnightRule accepts the eight (1,2)/(2,1) jumps.
func LShapedKnightRule(start, end Coordinate) bool {
	dx := utils.Abs(end.X - start.X)
	dy := utils.Abs(end.Y - start.Y)
	return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
}

// IsDiagonalMove reports whether |dx| == |dy|. A zero displacement counts.
func IsDiagonalMove(start, end Coordinate) bool {
	return utils.Abs(end.X-start.X) == utils.Abs(end.Y-start.Y)
}

// isLine reports whether end lies on a horizontal, vertical or diagonal line
// through start.
func isLine(start, end Coordinate) bool {
	return start.X == end.X || start.Y == end.Y || IsDiagonalMove(start, end)
}
