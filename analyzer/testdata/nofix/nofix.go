package nofix

import "test/tasks"

func Load() tasks.Task { // want `Method 'Load' returns an awaitable type but its name does not end with 'Async'`
	return tasks.Task{}
}

func LoadAsync() tasks.Task {
	return tasks.Task{}
}

type Repo struct{}

func (Repo) Fetch() tasks.Task { // want `Method 'Fetch' returns an awaitable type but its name does not end with 'Async'`
	return tasks.Task{}
}

func (Repo) FetchAsync() tasks.Task {
	return tasks.Task{}
}
