package game

// LegalColors lists the colors the party may pick, in palette order. It does
// not look at whose turn it is; a finished game has none.
func LegalColors(s GameState, party PartyID) []Color {
	if s.Terminal || !party.Valid() {
		return nil
	}
	own := s.Party(party).Color
	opp := s.Party(party.Opponent()).Color
	out := make([]Color, 0, len(s.Palette))
	for _, c := range s.Palette {
		if c == own || c == opp {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Scores returns the blob sizes of party 1 and party 2.
func Scores(s GameState) [2]int {
	return [2]int{s.Parties[0].Blob.Len(), s.Parties[1].Blob.Len()}
}

// Gain is the number of cells the party would add by picking color now.
func Gain(s GameState, party PartyID, color Color) int {
	p := s.Party(party)
	b := s.Board.Clone()
	for _, c := range p.Blob {
		b.Cells[c.Row][c.Col] = color
	}
	return ComputeBlob(b, p.Anchors, color).Len() - p.Blob.Len()
}

// bestGain is the largest immediate gain over the party's legal colors.
func bestGain(s GameState, party PartyID) int {
	best := 0
	for _, c := range LegalColors(s, party) {
		if g := Gain(s, party, c); g > best {
			best = g
		}
	}
	return best
}
