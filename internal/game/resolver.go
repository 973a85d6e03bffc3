package game

// Outcome records whether a move was accepted and, if not, why.
type Outcome struct {
	Accepted bool  `json:"accepted"`
	Code     Code  `json:"code,omitempty"`
	Err      error `json:"-"`
}

func rejected(err error) Outcome {
	return Outcome{Code: CodeOf(err), Err: err}
}

// Validate checks a color selection against s without changing anything.
func Validate(s GameState, acting PartyID, color Color) error {
	switch {
	case s.Terminal:
		return ErrGameOver
	case !acting.Valid():
		return ErrUnknownParty
	case !s.Palette.Contains(color):
		return ErrUnknownColor
	case acting != s.Turn:
		return ErrOutOfTurn
	case color == s.Party(acting).Color:
		return ErrNoOpMove
	case color == s.Party(acting.Opponent()).Color:
		return ErrForbiddenColor
	}
	return nil
}

// Resolve applies a color selection by the acting party. On rejection the
// returned state is s itself and the outcome carries the reason. s is never
// modified.
func Resolve(s GameState, acting PartyID, color Color) (GameState, Outcome) {
	if err := Validate(s, acting, color); err != nil {
		return s, rejected(err)
	}

	next := s.Clone()
	me := next.party(acting)
	opp := next.party(acting.Opponent())

	for _, c := range me.Blob {
		next.Board.Cells[c.Row][c.Col] = color
	}
	me.Color = color
	me.Blob = ComputeBlob(next.Board, me.Anchors, color)

	// The acting party keeps everything it reaches; the opponent is recomputed
	// around it so its blob stays connected and disjoint.
	opp.Blob = floodFill(next.Board, opp.Anchors, opp.Color, me.Blob)

	next.Turn = acting.Opponent()
	next.Moves++
	evaluateTerminal(&next)
	return next, Outcome{Accepted: true}
}
