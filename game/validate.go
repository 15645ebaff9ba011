package game

type ValidatorOption func(v *Validator)

// WithRule binds a movement rule to a kind, replacing the standard one.
func WithRule(kind Kind, rule Rule) ValidatorOption {
	return func(v *Validator) {
		if rule != nil {
			v.rules = v.rules.With(kind, rule)
		}
	}
}

// WithCapture lets a move end on an enemy piece without the destination
// counting as an obstruction. Without it, any occupied destination blocks.
func WithCapture() ValidatorOption {
	return func(v *Validator) {
		v.capture = true
	}
}

// Validator decides whether a move is legal. It never mutates the board.
type Validator struct {
	rules   Rules
	capture bool
}

func NewValidator(options ...ValidatorOption) *Validator {
	v := &Validator{ // Default values
		rules: NewStandardRules(),
	}
	for _, option := range options {
		option(v)
	}
	return v
}

var defaultValidator = NewValidator()

// Validate checks a move with the standard rules.
func Validate(b *Board, player Player, start, end Coordinate) error {
	return defaultValidator.Validate(b, player, start, end)
}

// RulesAbiding reports whether the validator's rule for kind accepts the
// displacement.
func (v *Validator) RulesAbiding(kind Kind, start, end Coordinate) bool {
	return v.rules.allows(kind, start, end)
}

// Validate runs the checks in order and returns the first failure as a
// MoveError, or nil if the move is legal:
//
//  1. destination on the board (ErrOutOfBounds)
//  2. a piece at start (ErrPieceNotFound)
//  3. that piece belongs to player (ErrInvalidMove)
//  4. destination not held by player (ErrInvalidMove)
//  5. kind rule accepts the displacement (ErrNotRuleAbiding)
//  6. path is clear (ErrMoveBlocked)
func (v *Validator) Validate(b *Board, player Player, start, end Coordinate) error {
	if err := IsWithinBoard(b, end); err != nil {
		return err
	}

	mover, ok := b.PieceAt(start)
	if !ok {
		return ErrPieceNotFound
	}
	if mover.Owner != player {
		return ErrInvalidMove
	}

	if target, ok := b.PieceAt(end); ok && target.Owner == player {
		return ErrInvalidMove
	}

	if !v.RulesAbiding(mover.Kind, start, end) {
		return ErrNotRuleAbiding
	}

	var capturer *Player
	if v.capture {
		capturer = &player
	}
	return tracePath(b, start, end, capturer)
}
