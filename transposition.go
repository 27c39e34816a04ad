// Package mlcc - zigzag transposition stage.
//
// Encrypt fills a rows×C grid row by row with alternating direction
// (even rows left→right, odd rows right→left), then reads whole columns
// in the key's derived column order. The final row may be partial, so
// some columns end up one cell short.
//
// Decrypt reconstructs the grid from ciphertext length alone:
//
//	rows  = ceil(L/C), empty = rows*C − L
//	last row index even → the short columns are the LAST `empty`
//	original column indices; odd → the FIRST `empty` indices.
//
// The asymmetry comes from the zigzag: the direction of the final
// (partial) row decides which original columns were touched last. With
// column lengths known, ciphertext is consumed column by column in read
// order, then the grid is read back with the same zigzag rule.
//
// Contracts:
//   - Input text is cleaned; empty cells are zero bytes and never
//     collide with letters.
//   - Decrypt(Encrypt(t)) == t for every valid key and length, including
//     L%C == 0 (no short columns), L == C (one row) and L < C.
//
// Complexity: O(rows·C) time and space per call.
package mlcc

// ceilDiv returns ⌈a/b⌉ for positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// newGrid allocates a rows×cols byte grid; zero bytes mark empty cells.
func newGrid(rows, cols int) [][]byte {
	grid := make([][]byte, rows)

	var r int
	for r = range grid {
		grid[r] = make([]byte, cols)
	}

	return grid
}

// zigzagFill writes text into a fresh grid row-major with alternating
// direction, consuming text in natural order until exhausted.
func zigzagFill(text string, cols int) [][]byte {
	grid := newGrid(ceilDiv(len(text), cols), cols)

	var (
		idx int
		row int
		col int
	)
	for row = 0; row < len(grid); row++ {
		if row%2 == 0 {
			for col = 0; col < cols && idx < len(text); col++ {
				grid[row][col] = text[idx]
				idx++
			}
		} else {
			for col = cols - 1; col >= 0 && idx < len(text); col-- {
				grid[row][col] = text[idx]
				idx++
			}
		}
	}

	return grid
}

// zigzagRead reads filled cells back row-major with the same alternating
// direction rule as zigzagFill.
func zigzagRead(grid [][]byte) string {
	if len(grid) == 0 {
		return ""
	}

	var (
		cols = len(grid[0])
		out  = make([]byte, 0, len(grid)*cols)
		row  int
		col  int
	)
	for row = 0; row < len(grid); row++ {
		if row%2 == 0 {
			for col = 0; col < cols; col++ {
				if grid[row][col] != 0 {
					out = append(out, grid[row][col])
				}
			}
		} else {
			for col = cols - 1; col >= 0; col-- {
				if grid[row][col] != 0 {
					out = append(out, grid[row][col])
				}
			}
		}
	}

	return string(out)
}

// transposeEncrypt runs the forward transform and also returns the
// filled grid for the encryption trace.
func transposeEncrypt(text string, k *TranspositionKey) (string, [][]byte) {
	grid := zigzagFill(text, k.Columns())

	var (
		out = make([]byte, 0, len(text))
		col int
		row int
	)
	for _, col = range k.order {
		for row = 0; row < len(grid); row++ {
			if grid[row][col] != 0 {
				out = append(out, grid[row][col])
			}
		}
	}

	return string(out), grid
}

// Encrypt emits the ciphertext of the zigzag transposition.
func (k *TranspositionKey) Encrypt(text string) string {
	out, _ := transposeEncrypt(text, k)

	return out
}

// Decrypt inverts the transform from ciphertext length alone: derive
// per-column lengths via the short-column parity rule, refill the grid
// in column read order, then read it back in zigzag row order.
func (k *TranspositionKey) Decrypt(ciphertext string) string {
	if len(ciphertext) == 0 {
		return ""
	}

	var (
		cols  = k.Columns()
		rows  = ceilDiv(len(ciphertext), cols)
		empty = rows*cols - len(ciphertext)
		short = make([]bool, cols)
		col   int
	)
	if empty > 0 {
		if (rows-1)%2 == 0 {
			// Final row filled left→right: rightmost columns were never reached.
			for col = cols - empty; col < cols; col++ {
				short[col] = true
			}
		} else {
			// Final row filled right→left: leftmost columns were never reached.
			for col = 0; col < empty; col++ {
				short[col] = true
			}
		}
	}

	var (
		grid   = newGrid(rows, cols)
		idx    int
		row    int
		height int
	)
	for _, col = range k.order {
		height = rows
		if short[col] {
			height--
		}
		for row = 0; row < height && idx < len(ciphertext); row++ {
			grid[row][col] = ciphertext[idx]
			idx++
		}
	}

	return zigzagRead(grid)
}
