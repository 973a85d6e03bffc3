package game

import "filler-game/internal/config"

// HeuristicScore rates s from the point of view of party. Finished games
// score ±WWin; otherwise area, frontier and immediate capture potential are
// compared against the opponent.
func HeuristicScore(s GameState, party PartyID, w config.HeuristicWeights) int {
	opp := party.Opponent()
	if s.Terminal {
		switch s.Winner {
		case party:
			return w.WWin
		case opp:
			return -w.WWin
		default:
			return 0
		}
	}

	me, them := s.Party(party), s.Party(opp)
	score := 0

	score += w.WArea * (me.Blob.Len() - them.Blob.Len())

	myFrontier := len(Frontier(s.Board, me.Blob, them.Blob))
	theirFrontier := len(Frontier(s.Board, them.Blob, me.Blob))
	score += w.WFrontier * (myFrontier - theirFrontier)

	score += w.WMobility * (bestGain(s, party) - bestGain(s, opp))

	return score
}
