package queue

// Candidate is a scored window position.
type Candidate struct {
	X, Z  int32 // X and Z are the chunk coordinates of the window centre.
	Score int   // Score is the number of slime chunks under the mask.
	Seq   int64 // Seq is the position's index in the global snake traversal.
}

// Better reports whether a ranks above b: higher score first, then the
// earlier traversal position.
func Better(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Seq < b.Seq
}

// Bounded is a min-heap that keeps the best Cap() candidates offered to it.
// The top element is the current worst kept candidate.
type Bounded struct {
	capacity int
	items    []Candidate
}

// NewBounded initializes a bounded queue that keeps at most capacity items.
func NewBounded(capacity int) *Bounded {
	if capacity < 0 {
		capacity = 0
	}
	return &Bounded{
		capacity: capacity,
		items:    make([]Candidate, 0, capacity),
	}
}

// Len returns the number of elements in the queue.
func (q *Bounded) Len() int { return len(q.items) }

// Cap returns the maximum number of elements kept.
func (q *Bounded) Cap() int { return q.capacity }

// Peek returns the worst kept candidate.
func (q *Bounded) Peek() (Candidate, bool) {
	if len(q.items) == 0 {
		return Candidate{}, false
	}
	return q.items[0], true
}

// Offer inserts c while the queue has room. Once full, c replaces the worst
// kept candidate only if it is strictly better; an equal score loses to the
// earlier traversal position. It reports whether c was kept.
func (q *Bounded) Offer(c Candidate) bool {
	if q.capacity == 0 {
		return false
	}
	if len(q.items) < q.capacity {
		q.items = append(q.items, c)
		q.siftUp(len(q.items) - 1)
		return true
	}
	if !Better(c, q.items[0]) {
		return false
	}
	q.items[0] = c
	q.siftDown(0)
	return true
}

// Pop removes and returns the worst kept candidate.
func (q *Bounded) Pop() (Candidate, bool) {
	n := len(q.items)
	if n == 0 {
		return Candidate{}, false
	}
	root := q.items[0]
	q.items[0] = q.items[n-1]
	q.items = q.items[:n-1]
	if n-1 > 0 {
		q.siftDown(0)
	}
	return root, true
}

// Merge drains other into q using the Offer rule. other is left empty.
func (q *Bounded) Merge(other *Bounded) {
	for {
		c, ok := other.Pop()
		if !ok {
			return
		}
		q.Offer(c)
	}
}

// Sorted drains the queue and returns its candidates best first.
func (q *Bounded) Sorted() []Candidate {
	out := make([]Candidate, len(q.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i], _ = q.Pop()
	}
	return out
}

// Reset clears the queue for reuse.
func (q *Bounded) Reset() {
	q.items = q.items[:0]
}

// worse orders the heap: the root is the candidate every other one beats.
func (q *Bounded) worse(i, j int) bool {
	return Better(q.items[j], q.items[i])
}

func (q *Bounded) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !q.worse(i, p) {
			return
		}
		q.items[i], q.items[p] = q.items[p], q.items[i]
		i = p
	}
}

func (q *Bounded) siftDown(i int) {
	n := len(q.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		w := l
		if r := l + 1; r < n && q.worse(r, l) {
			w = r
		}
		if !q.worse(w, i) {
			return
		}
		q.items[i], q.items[w] = q.items[w], q.items[i]
		i = w
	}
}
