package state

// Layout gives the screen rows of the list view. The renderer draws to it
// and mouse handling reads it back.
type Layout struct {
	HeaderRow  int
	InputRow   int
	BannerRow  int
	ListTop    int
	ListHeight int
	FooterRow  int
	HintsRow   int // -1 when hints are hidden
}

// Checkbox columns of a list row ("▸ [x] title").
const (
	CheckboxStart = 2
	CheckboxEnd   = 5
)

// Layout computes the row positions for the current terminal size.
func (s *State) Layout() Layout {
	l := Layout{
		HeaderRow: 0,
		InputRow:  1,
		BannerRow: 2,
		ListTop:   3,
		HintsRow:  -1,
	}

	bottom := 1 // footer
	if s.ShowHints {
		bottom++
	}
	l.ListHeight = s.Height - l.ListTop - bottom
	if l.ListHeight < 1 {
		l.ListHeight = 1
	}
	l.FooterRow = l.ListTop + l.ListHeight
	if s.ShowHints {
		l.HintsRow = l.FooterRow + 1
	}
	return l
}

// ItemRows returns how many list rows are left for todos once the
// placeholder row is accounted for.
func (l Layout) ItemRows(placeholder bool) int {
	if placeholder && l.ListHeight > 1 {
		return l.ListHeight - 1
	}
	return l.ListHeight
}
