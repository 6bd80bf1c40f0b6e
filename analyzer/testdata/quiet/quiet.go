package quiet

import "test/tasks"

type Store interface {
	Put(v int) tasks.Task
}
