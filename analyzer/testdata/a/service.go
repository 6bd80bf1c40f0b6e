package a

import "test/tasks"

type Service struct{}

func (s *Service) Load(key string) tasks.ValueTask[int] { // want `Method 'Load' returns an awaitable type but its name does not end with 'Async'`
	return tasks.ValueTask[int]{}
}

func (s *Service) Close() error { return nil }

func All[T any](items []T) tasks.ValueTask[[]T] { // want `Method 'All' returns an awaitable type but its name does not end with 'Async'`
	return tasks.ValueTask[[]T]{}
}

func consume(s *Service) {
	_ = s.Load("k")
	_ = All([]int{1, 2, 3})
}
