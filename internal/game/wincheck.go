package game

// HasMajority reports whether a blob of n cells strictly exceeds half the board.
func HasMajority(n, total int) bool {
	return n*2 > total
}

// evaluateTerminal sets the winner once a blob holds the majority, or a draw
// when both blobs together cover the board in an exact tie.
func evaluateTerminal(s *GameState) {
	if s.Terminal {
		return
	}
	total := s.Board.CellCount()
	for _, p := range s.Parties {
		if HasMajority(p.Blob.Len(), total) {
			s.Winner = p.ID
			s.Terminal = true
			return
		}
	}
	if s.Parties[0].Blob.Len()+s.Parties[1].Blob.Len() == total {
		s.Draw = true
		s.Terminal = true
	}
}
