package a

import "test/tasks"

// Stub is implemented elsewhere.
func Stub() tasks.Task // want `Method 'Stub' returns an awaitable type but its name does not end with 'Async'`
