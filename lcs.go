package jsondelta

// IndexPair asserts left[Left] and right[Right] are equal
type IndexPair struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// LCS calculates the longest common subsequence of two value lists, returning
// matched index pairs in increasing order. Background on LCSS:
// https://en.wikipedia.org/wiki/Longest_common_subsequence_problem
//
// eq defaults to Equal. if hash is non-nil it's computed once per element
// and used to skip eq for elements whose hashes differ. when two
// subsequences are equally long, the one that keeps matching further along
// the left list wins
func LCS(left, right []*Value, eq EqualFunc, hash HashFunc) []IndexPair {
	if eq == nil {
		eq = Equal
	}
	match := func(i, j int) bool { return eq(left[i], right[j]) }
	if hash != nil {
		lh := make([]uint64, len(left))
		for i, v := range left {
			lh[i] = hash(v)
		}
		rh := make([]uint64, len(right))
		for j, v := range right {
			rh[j] = hash(v)
		}
		match = func(i, j int) bool { return lh[i] == rh[j] && eq(left[i], right[j]) }
	}
	return lcs(len(left), len(right), match)
}

// chain is a persistent list of matched pairs, newest first. cells of the
// dynamic program share tails instead of copying
type chain struct {
	pair IndexPair
	prev *chain
	n    int
}

func (c *chain) len() int {
	if c == nil {
		return 0
	}
	return c.n
}

// lcs runs the dynamic program
//
//	dp[i+1][j+1] = dp[i][j] + (i,j)               if match(i, j)
//	             = longer of dp[i][j+1], dp[i+1][j] otherwise, dp[i][j+1] on ties
//
// keeping two rows of the shorter dimension. when left is the shorter list
// the table is walked transposed with the tie rule mirrored, which yields the
// same cells
func lcs(n, m int, match func(i, j int) bool) []IndexPair {
	if n == 0 || m == 0 {
		return []IndexPair{}
	}

	transposed := n < m
	outer, inner := n, m
	if transposed {
		outer, inner = m, n
	}

	var rows [2][]*chain
	rows[0] = make([]*chain, inner+1)
	rows[1] = make([]*chain, inner+1)

	for o := 0; o < outer; o++ {
		prev, cur := rows[o&1], rows[(o+1)&1]
		cur[0] = nil
		for in := 0; in < inner; in++ {
			i, j := o, in
			if transposed {
				i, j = in, o
			}
			if match(i, j) {
				cur[in+1] = &chain{pair: IndexPair{Left: i, Right: j}, prev: prev[in], n: prev[in].len() + 1}
				continue
			}
			// skipLeft is dp[i][j+1], skipRight is dp[i+1][j]
			skipLeft, skipRight := prev[in+1], cur[in]
			if transposed {
				skipLeft, skipRight = cur[in], prev[in+1]
			}
			if skipRight.len() > skipLeft.len() {
				cur[in+1] = skipRight
			} else {
				cur[in+1] = skipLeft
			}
		}
	}

	best := rows[outer&1][inner]
	pairs := make([]IndexPair, best.len())
	for c, k := best, best.len()-1; c != nil; c, k = c.prev, k-1 {
		pairs[k] = c.pair
	}
	return pairs
}
