package nav

// Scheduler defers work until after the next render pass.
type Scheduler interface {
	// Schedule queues task and returns a function that cancels it.
	Schedule(task func()) (cancel func())
}

// FrameQueue is a Scheduler whose tasks run when the transport signals that a
// render pass has reached the client. It is not safe for concurrent use.
type FrameQueue struct {
	next  uint64
	order []uint64
	tasks map[uint64]func()
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{tasks: make(map[uint64]func())}
}

// Schedule implements Scheduler.
func (q *FrameQueue) Schedule(task func()) func() {
	q.next++
	id := q.next
	q.tasks[id] = task
	q.order = append(q.order, id)
	return func() { delete(q.tasks, id) }
}

// Flush runs the tasks queued before the call, in order, and returns how many
// ran. Tasks scheduled while flushing wait for the next pass.
func (q *FrameQueue) Flush() int {
	order := q.order
	q.order = nil
	ran := 0
	for _, id := range order {
		task, ok := q.tasks[id]
		if !ok {
			continue
		}
		delete(q.tasks, id)
		task()
		ran++
	}
	return ran
}

// Pending is the number of queued, uncancelled tasks.
func (q *FrameQueue) Pending() int {
	return len(q.tasks)
}

// Close drops every queued task.
func (q *FrameQueue) Close() {
	q.order = nil
	q.tasks = make(map[uint64]func())
}
