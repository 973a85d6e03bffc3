package game

import (
	"math"

	"filler-game/internal/config"
)

// BestMove searches depth plies ahead with alpha-beta minimax and returns the
// color the party should pick. It reports false when the party cannot move:
// the game is over or it is not the party's turn. Ties go to the earliest
// color in palette order.
func BestMove(s GameState, party PartyID, depth int, w config.HeuristicWeights) (Color, bool) {
	if s.Terminal || s.Turn != party {
		return "", false
	}
	if depth < 1 {
		depth = 1
	}

	var best Color
	bestScore := math.MinInt
	alpha, beta := math.MinInt, math.MaxInt
	for _, c := range LegalColors(s, party) {
		next, out := Resolve(s, party, c)
		if !out.Accepted {
			continue
		}
		score := minimax(next, party, depth-1, alpha, beta, w)
		if best == "" || score > bestScore {
			best, bestScore = c, score
		}
		if score > alpha {
			alpha = score
		}
	}
	return best, best != ""
}

func minimax(s GameState, party PartyID, depth, alpha, beta int, w config.HeuristicWeights) int {
	if depth == 0 || s.Terminal {
		return HeuristicScore(s, party, w)
	}

	moves := LegalColors(s, s.Turn)
	if len(moves) == 0 {
		return HeuristicScore(s, party, w)
	}

	if s.Turn == party {
		value := math.MinInt
		for _, c := range moves {
			next, _ := Resolve(s, s.Turn, c)
			value = max(value, minimax(next, party, depth-1, alpha, beta, w))
			alpha = max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := math.MaxInt
	for _, c := range moves {
		next, _ := Resolve(s, s.Turn, c)
		value = min(value, minimax(next, party, depth-1, alpha, beta, w))
		beta = min(beta, value)
		if alpha >= beta {
			break
		}
	}
	return value
}
