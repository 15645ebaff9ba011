package game

// Rule is a pure movement predicate for one kind of piece. It only looks at
// the displacement, never at board state.
type Rule func(start, end Coordinate) bool

// Rules maps each kind to its movement rule. A kind with no rule cannot move.
type Rules map[Kind]Rule

var defaultRules = NewStandardRules()

func (r Rules) allows(kind Kind, start, end Coordinate) bool {
	rule, ok := r[kind]
	if !ok || rule == nil {
		return false
	}
	return rule(start, end)
}

// With returns a copy of r with kind bound to rule.
func (r Rules) With(kind Kind, rule Rule) Rules {
	out := make(Rules, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	out[kind] = rule
	return out
}
