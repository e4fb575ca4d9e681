package dialog

import "context"

// Status reports how a turn left the dialog stack.
type Status string

const (
	// StatusEmpty means continue was called with no active dialog.
	StatusEmpty Status = "empty"
	// StatusWaiting means a reply was emitted and the stack is suspended
	// until the next transport turn.
	StatusWaiting Status = "waiting"
	// StatusComplete means the stack bottomed out; Value carries the
	// outermost dialog's end value.
	StatusComplete Status = "complete"
)

// Result is the outcome of driving the stack for one call.
type Result struct {
	Status Status
	Value  any
}

// A Dialog is a named, composable unit of conversation logic. Implementations
// must be stateless: all per-conversation data lives in the frame, which the
// Context supplies on every call.
type Dialog interface {
	// ID returns the stable registration name.
	ID() string

	// Begin runs the dialog's entry behavior for a freshly pushed frame.
	Begin(ctx context.Context, dc *Context, options any) (Result, error)

	// Continue dispatches the current turn's input to the dialog while its
	// frame is on top of the stack.
	Continue(ctx context.Context, dc *Context) (Result, error)

	// Resume re-enters the dialog after a child frame ended, delivering the
	// child's end value.
	Resume(ctx context.Context, dc *Context, value any) (Result, error)
}
