package textprocessor

// CountConservedSentences counts the sentences of original found unchanged in
// revised while walking revised strictly forward. Sentences added to revised do
// not count against original; moved sentences do. The matching is greedy and
// never backtracks, so it may find less than an optimal alignment would.
func CountConservedSentences(original []string, revised []string) int {
	conserved := 0
	cursor := 0
	for _, sentence := range original {
		for j := cursor; j < len(revised); j++ {
			if sentence == revised[j] {
				conserved++
				cursor = j + 1
				break
			}
		}
	}
	return conserved
}
