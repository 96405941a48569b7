package pool

// winners is an order-preserving multiset of population indices.
type winners struct {
	order  []int
	counts map[int]int
}

func newWinners() *winners {
	return &winners{counts: make(map[int]int)}
}

func (w *winners) Push(id int) {
	w.order = append(w.order, id)
	w.counts[id]++
}

func (w *winners) Len() int { return len(w.order) }

func (w *winners) Count(id int) int { return w.counts[id] }

// PopLast removes and returns the most recently pushed winner.
func (w *winners) PopLast() int {
	id := w.order[len(w.order)-1]
	w.order = w.order[:len(w.order)-1]
	w.decrement(id)
	return id
}

// RemoveLast removes the most recent occurrence of id.
func (w *winners) RemoveLast(id int) bool {
	for i := len(w.order) - 1; i >= 0; i-- {
		if w.order[i] == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			w.decrement(id)
			return true
		}
	}
	return false
}

// Items returns the winners in the order they were pushed.
func (w *winners) Items() []int {
	return append([]int(nil), w.order...)
}

func (w *winners) Reset() {
	w.order = w.order[:0]
	clear(w.counts)
}

func (w *winners) decrement(id int) {
	if w.counts[id] <= 1 {
		delete(w.counts, id)
		return
	}
	w.counts[id]--
}
