package coincidence

// LinkPairs computes LinkTable(ids).Pairs(tri) without materialising the table.
func LinkPairs(ids []float64, tri Triangle) Pairs {
	out := make(Pairs, 0, NumPairs(len(ids)))
	forEachPair(len(ids), tri, func(i, j int) {
		out = append(out, linkOf(ids[i], ids[j]))
	})
	return out
}

// JaccardPairs computes JaccardTable(feature).Pairs(tri) without
// materialising the table.
func JaccardPairs(feature []float64, tri Triangle) Pairs {
	out := make(Pairs, 0, NumPairs(len(feature)))
	forEachPair(len(feature), tri, func(i, j int) {
		out = append(out, coincidenceOf(feature[i], feature[j]))
	})
	return out
}

// StreamPairs returns the aligned link and coincidence pairs of ids and
// feature over the strict triangle tri. It panics with ErrLengthMismatch if
// the inputs differ in length.
func StreamPairs(ids, feature []float64, tri Triangle) (link, jacc Pairs) {
	if len(ids) != len(feature) {
		panic(ErrLengthMismatch)
	}
	return LinkPairs(ids, tri), JaccardPairs(feature, tri)
}

// Score is CalcRatios over the lower-triangle pairs of ids and feature.
func Score(ids, feature []float64) Ratios {
	return CalcRatios(StreamPairs(ids, feature, Lower))
}
