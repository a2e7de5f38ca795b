package driven

import "context"

// InputWatcher reports changes to the record export so the index can be
// rebuilt.
type InputWatcher interface {
	// Watch starts watching and returns a channel that receives a value
	// after each settled change. The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
