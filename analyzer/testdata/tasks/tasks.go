package tasks

// Task represents an asynchronous operation with no result.
type Task struct{}

// Wait blocks until the task completes.
func (Task) Wait() {}

// ValueTask represents an asynchronous operation producing a T.
type ValueTask[T any] struct{}

// Result blocks until the task completes and returns its value.
func (ValueTask[T]) Result() (v T) { return v }

// TaskQueue is a queue of pending tasks. It is not itself awaitable.
type TaskQueue struct{}
