package people

import "sort"

// ByAuthorship orders Stats by sponsored, then original cosponsored, then
// later cosponsored count, all descending. Full ties are ordered by name.
type ByAuthorship []Stats

// these three are the implementation of sort interface
func (ba ByAuthorship) Len() int {
	return len(ba)
}

func (ba ByAuthorship) Swap(i, j int) {
	ba[i], ba[j] = ba[j], ba[i]
}

func (ba ByAuthorship) Less(i, j int) bool {
	a, b := ba[i], ba[j]
	switch {
	case a.Sponsored != b.Sponsored:
		return a.Sponsored > b.Sponsored
	case a.OriginalCosponsored != b.OriginalCosponsored:
		return a.OriginalCosponsored > b.OriginalCosponsored
	case a.LaterCosponsored != b.LaterCosponsored:
		return a.LaterCosponsored > b.LaterCosponsored
	default:
		return a.Name < b.Name
	}
}

// Rank returns the aggregated stats as a slice in ByAuthorship order.
func Rank(stats map[string]*Stats) []Stats {
	ranked := make([]Stats, 0, len(stats))
	for _, s := range stats {
		ranked = append(ranked, *s)
	}
	sort.Sort(ByAuthorship(ranked))
	return ranked
}
