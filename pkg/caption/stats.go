package caption

// Stats summarises a document for host status displays.
type Stats struct {
	Frames        int
	Words         int
	Censored      int
	Removed       int
	Strikethrough int
	CustomBreaks  int

	// CoveredSeconds is the summed duration of all frame windows. Gaps
	// between frames are not counted.
	CoveredSeconds float64
}

// Stats computes summary statistics over the document.
func (d *Document) Stats() Stats {
	var s Stats
	if d == nil {
		return s
	}
	s.Frames = len(d.Frames)
	for _, f := range d.Frames {
		s.Words += len(f.Words)
		s.CoveredSeconds += f.Duration()
		if f.IsCustomBreak {
			s.CustomBreaks++
		}
		for _, w := range f.Words {
			switch w.EditState {
			case EditStateCensored:
				s.Censored++
			case EditStateRemovedCaption:
				s.Removed++
			case EditStateStrikethrough:
				s.Strikethrough++
			}
		}
	}
	return s
}
