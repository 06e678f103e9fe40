package entities

// CloneSummary describes the checkout produced by a clone.
type CloneSummary struct {
	Branch string
	Head   string
	Remote string
}

// ShortHead returns the abbreviated HEAD hash.
func (s CloneSummary) ShortHead() string {
	const shortHashLen = 7
	if len(s.Head) <= shortHashLen {
		return s.Head
	}
	return s.Head[:shortHashLen]
}
