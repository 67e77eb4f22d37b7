package people

// Stats is the authorship record of one legislator. Each count is the
// length of the matching title list.
type Stats struct {
	Name                      string   `json:"name"`
	Sponsored                 int      `json:"sponsored"`
	OriginalCosponsored       int      `json:"originalCosponsored"`
	LaterCosponsored          int      `json:"laterCosponsored"`
	SponsoredTitles           []string `json:"sponsoredTitles"`
	OriginalCosponsoredTitles []string `json:"originalCosponsoredTitles"`
	LaterCosponsoredTitles    []string `json:"laterCosponsoredTitles"`
}

func newStats(name string) *Stats {
	return &Stats{
		Name:                      name,
		SponsoredTitles:           []string{},
		OriginalCosponsoredTitles: []string{},
		LaterCosponsoredTitles:    []string{},
	}
}

func (s *Stats) addSponsored(title string) {
	s.Sponsored++
	s.SponsoredTitles = append(s.SponsoredTitles, title)
}

func (s *Stats) addOriginalCosponsored(title string) {
	s.OriginalCosponsored++
	s.OriginalCosponsoredTitles = append(s.OriginalCosponsoredTitles, title)
}

func (s *Stats) addLaterCosponsored(title string) {
	s.LaterCosponsored++
	s.LaterCosponsoredTitles = append(s.LaterCosponsoredTitles, title)
}
