package match

// MinSimilarity is the lowest normalized similarity Suggest accepts.
const MinSimilarity = 0.5

// Suggest returns the candidate closest to name, or "" when none is similar
// enough to be a plausible typo. Ties go to the earlier candidate.
func Suggest(name string, candidates []string) string {
	norm := NormalizeKey(name)

	best, bestScore := "", 0.0

	for _, c := range candidates {
		score := Similarity(norm, NormalizeKey(c))
		if score >= MinSimilarity && score > bestScore {
			best, bestScore = c, score
		}
	}

	return best
}
