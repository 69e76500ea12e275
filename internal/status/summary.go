package status

// Summary counts entries per category
type Summary struct {
	Untracked int
	Unstaged  int
	Staged    int
}

// Summarize counts entries per category
func Summarize(entries []PathStatus) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Category {
		case CategoryUntracked:
			s.Untracked++
		case CategoryUnstaged:
			s.Unstaged++
		case CategoryStaged:
			s.Staged++
		}
	}
	return s
}

// Clean reports whether there is nothing to show
func (s Summary) Clean() bool {
	return s.Untracked == 0 && s.Unstaged == 0 && s.Staged == 0
}

// Filter returns the entries of one category, preserving order
func Filter(entries []PathStatus, category Category) []PathStatus {
	var out []PathStatus
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
