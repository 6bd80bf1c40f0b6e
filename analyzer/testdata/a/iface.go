package a

import "test/tasks"

type Loader interface {
	Get(key string) tasks.Task // want `Method 'Get' returns an awaitable type but its name does not end with 'Async'`
	Ready() bool
}

func lookup(l Loader) {
	if l.Ready() {
		_ = l.Get("k")
	}
}
