package grid

// DefHistoryLimit is the default number of undo steps kept
const DefHistoryLimit = 1000

// History is the stack of previous grid states
// with a positive limit it keeps only the most recent snapshots, the oldest are dropped
type History struct {
	snapshots []Area
	limit     int
}

// NewHistory creates a history holding at most limit snapshots, 0 means no limit
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Push stores the snapshot on top of the stack
func (h *History) Push(a Area) {
	if h.limit > 0 && len(h.snapshots) >= h.limit {
		copy(h.snapshots, h.snapshots[1:])
		h.snapshots[len(h.snapshots)-1] = Area{}
		h.snapshots = h.snapshots[:len(h.snapshots)-1]
	}
	h.snapshots = append(h.snapshots, a)
}

// Pop removes and returns the most recent snapshot
func (h *History) Pop() (Area, bool) {
	a, ok := h.Peek()
	if !ok {
		return Area{}, false
	}
	h.snapshots[len(h.snapshots)-1] = Area{}
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return a, true
}

// Peek returns the most recent snapshot without removing it
func (h *History) Peek() (Area, bool) {
	if len(h.snapshots) == 0 {
		return Area{}, false
	}
	return h.snapshots[len(h.snapshots)-1], true
}

func (h *History) Len() int {
	return len(h.snapshots)
}

func (h *History) Limit() int {
	return h.limit
}

// Reset drops all snapshots
func (h *History) Reset() {
	h.snapshots = nil
}
