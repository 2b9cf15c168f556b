// Package assign solves the minimum-cost assignment problem for square
// cost matrices using the Hungarian method with potentials (shortest
// augmenting paths), in O(n³) time.
package assign

import "math"

// Solve returns, for each row of the n×n cost matrix, the column index
// it is assigned to in a minimum-total-cost perfect matching. The matrix
// must be square; a nil or empty matrix yields an empty assignment.
func Solve(cost [][]float64) []int {
	n := len(cost)
	if n == 0 {
		return nil
	}

	// 1-based potentials and matching arrays; index 0 is a sentinel.
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	match := make([]int, n+1) // match[j] = row assigned to column j
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		match[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}

		// Grow alternating tree until a free column is reached.
		for {
			used[j0] = true
			i0 := match[j0]
			delta := math.Inf(1)
			j1 := 0

			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= n; j++ {
				if used[j] {
					u[match[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if match[j0] == 0 {
				break
			}
		}

		// Augment along the found path.
		for j0 != 0 {
			j1 := way[j0]
			match[j0] = match[j1]
			j0 = j1
		}
	}

	result := make([]int, n)
	for j := 1; j <= n; j++ {
		result[match[j]-1] = j - 1
	}
	return result
}

// Cost returns the total cost of an assignment produced by Solve.
func Cost(cost [][]float64, assignment []int) float64 {
	total := 0.0
	for i, j := range assignment {
		total += cost[i][j]
	}
	return total
}
