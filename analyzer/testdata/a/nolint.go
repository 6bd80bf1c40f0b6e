package a

import "test/tasks"

//nolint:asyncname
func Skip() tasks.Task {
	return tasks.Task{}
}

//nolint:all
func SkipAll() tasks.Task {
	return tasks.Task{}
}
