package entity

// SummaryLine is one subject in the upcoming birthdays listing.
type SummaryLine struct {
	SubjectID   string
	DisplayDate string
	DaysUntil   int
	IsToday     bool
}

// SummaryPage is a rendered page of the listing, used by on-demand views.
type SummaryPage struct {
	Index int
	Count int
	Total int
	Text  string
}

func (p *SummaryPage) HasPrev() bool {
	return p.Index > 0
}

func (p *SummaryPage) HasNext() bool {
	return p.Index < p.Count-1
}
