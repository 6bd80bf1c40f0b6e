package a

import "test/tasks"

func FetchData() tasks.Task { // want `Method 'FetchData' returns an awaitable type but its name does not end with 'Async'`
	return tasks.Task{}
}

func ProcessAsync() tasks.Task {
	return tasks.Task{}
}

func Count() int { return 0 }

func Drain() tasks.TaskQueue {
	return tasks.TaskQueue{}
}

func warm() {
	t := FetchData()
	t.Wait()
}
