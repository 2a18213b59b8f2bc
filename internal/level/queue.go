package level

// Queue holds the remaining levels of a campaign in play order. Levels only
// ever leave from the front: the session pops the next one when the current
// level is won.
type Queue struct {
	items []Level
}

// NewQueue builds a queue over the given levels, first element first.
func NewQueue(levels ...Level) *Queue {
	q := &Queue{items: make([]Level, len(levels))}
	copy(q.items, levels)
	return q
}

// Push appends a level to the back of the queue.
func (q *Queue) Push(l Level) {
	q.items = append(q.items, l)
}

// Pop removes and returns the front level. Returns nil when empty.
func (q *Queue) Pop() Level {
	if len(q.items) == 0 {
		return nil
	}
	l := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return l
}

// Peek returns the front level without removing it, or nil when empty.
func (q *Queue) Peek() Level {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

// Len returns the number of levels still waiting.
func (q *Queue) Len() int {
	return len(q.items)
}
