package nqueens

// NoQueenAttack counts the pairs of queens sharing a row or a diagonal.
// It is zero exactly on goal boards. Not admissible: one move can resolve
// several attacking pairs at once.
func NoQueenAttack(b Board) float64 {
	return float64(attacks(b, true))
}

// NoQueenRowAttack counts the pairs of queens sharing a row, ignoring diagonals.
func NoQueenRowAttack(b Board) float64 {
	return float64(attacks(b, false))
}

// attacks counts attacking pairs, optionally including diagonals.
func attacks(b Board, diagonals bool) int {
	n := b.N()
	count := 0
	for c1 := 0; c1 < n; c1++ {
		r1 := b.Row(c1)
		for c2 := c1 + 1; c2 < n; c2++ {
			r2 := b.Row(c2)
			if r1 == r2 || (diagonals && abs(r1-r2) == c2-c1) {
				count++
			}
		}
	}

	return count
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
