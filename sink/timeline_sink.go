package sink

// Timeline keeps every displayed line in memory, in order.
type Timeline struct {
	Lines []string
}

func NewTimeline() *Timeline {
	return &Timeline{
		Lines: nil,
	}
}

func (t *Timeline) Display(line string) {
	t.Lines = append(t.Lines, line)
}
