package textprocessor

// LongestCommonSubsequence returns the number of words shared by both sequences
// in the same relative order, not necessarily adjacent.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func LongestCommonSubsequence(a []string, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// b indexes the columns, keep it short
	if len(b) > len(a) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := range len(a) {
		curr[0] = 0
		for j := range len(b) {
			if a[i] == b[j] {
				curr[j+1] = prev[j] + 1 // match
			} else {
				curr[j+1] = max(prev[j+1], curr[j])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
