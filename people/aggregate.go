package people

import "github.com/civicdata/bill-sponsors/bills"

// Aggregate folds bills into one Stats per distinct name. A name that
// appears in several roles on the same bill is counted in each of them.
func Aggregate(bs []bills.Bill) map[string]*Stats {
	stats := map[string]*Stats{}

	get := func(name string) *Stats {
		s, ok := stats[name]
		if !ok {
			s = newStats(name)
			stats[name] = s
		}
		return s
	}

	for _, b := range bs {
		for _, name := range b.Sponsors {
			get(name).addSponsored(b.ShortestTitle)
		}
		for _, name := range b.OriginalCosponsors {
			get(name).addOriginalCosponsored(b.ShortestTitle)
		}
		for _, name := range b.LaterCosponsors {
			get(name).addLaterCosponsored(b.ShortestTitle)
		}
	}

	return stats
}
