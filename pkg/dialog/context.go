package dialog

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/turn"
)

// Context is the stack interpreter for one turn of one conversation. It
// mutates the persisted DialogState in place; the host saves that state back
// to the store when the turn ends.
type Context struct {
	set   *Set
	turn  *turn.Context
	state *domain.DialogState
}

// Turn returns the turn context this interpreter is driving.
func (dc *Context) Turn() *turn.Context {
	return dc.turn
}

// Active returns the top frame of the stack, or nil when the stack is empty.
func (dc *Context) Active() *domain.DialogInstance {
	if len(dc.state.Stack) == 0 {
		return nil
	}
	return &dc.state.Stack[len(dc.state.Stack)-1]
}

// Depth returns the number of frames on the stack.
func (dc *Context) Depth() int {
	return len(dc.state.Stack)
}

// Begin pushes a new frame for dialogID with the given options and runs the
// dialog's entry behavior. Options are supplied exactly once, here.
func (dc *Context) Begin(ctx context.Context, dialogID string, options any) (Result, error) {
	d, ok := dc.set.Lookup(dialogID)
	if !ok {
		return Result{}, fmt.Errorf("begin %q: %w", dialogID, domain.ErrUnknownDialog)
	}

	dc.state.Stack = append(dc.state.Stack, domain.DialogInstance{
		DialogID: dialogID,
		State:    make(map[string]any),
		Options:  options,
	})

	dc.set.logger.Debug("dialog begin", "dialog_id", dialogID, "depth", dc.Depth())
	if dc.set.hooks.OnDialogBegin != nil {
		dc.set.hooks.OnDialogBegin(ctx, &domain.DialogEvent{
			Timestamp:       time.Now(),
			DialogID:        dialogID,
			ConversationKey: dc.turn.ConversationKey(),
		})
	}

	return d.Begin(ctx, dc, options)
}

// Continue dispatches the turn's input to the top frame. An empty stack is
// benign: the result carries StatusEmpty and the host starts fresh.
func (dc *Context) Continue(ctx context.Context) (Result, error) {
	active := dc.Active()
	if active == nil {
		return Result{Status: StatusEmpty}, nil
	}

	d, ok := dc.set.Lookup(active.DialogID)
	if !ok {
		return Result{}, fmt.Errorf("continue %q: %w", active.DialogID, domain.ErrUnknownDialog)
	}
	return d.Continue(ctx, dc)
}

// End pops the top frame and delivers value to the new top frame, modeling
// "caller resumes after callee finishes". When the last frame pops, the
// result is Complete and value flows to the host instead.
func (dc *Context) End(ctx context.Context, value any) (Result, error) {
	active := dc.Active()
	if active == nil {
		return Result{Status: StatusComplete, Value: value}, nil
	}

	endedID := active.DialogID
	dc.state.Stack = dc.state.Stack[:len(dc.state.Stack)-1]

	dc.set.logger.Debug("dialog end", "dialog_id", endedID, "depth", dc.Depth())
	if dc.set.hooks.OnDialogEnd != nil {
		dc.set.hooks.OnDialogEnd(ctx, &domain.DialogEvent{
			Timestamp:       time.Now(),
			DialogID:        endedID,
			ConversationKey: dc.turn.ConversationKey(),
		})
	}

	parent := dc.Active()
	if parent == nil {
		return Result{Status: StatusComplete, Value: value}, nil
	}

	d, ok := dc.set.Lookup(parent.DialogID)
	if !ok {
		return Result{}, fmt.Errorf("resume %q: %w", parent.DialogID, domain.ErrUnknownDialog)
	}
	return d.Resume(ctx, dc, value)
}

// Replace pops the top frame without resuming its parent, then begins
// dialogID in its place. The stack depth is unchanged.
func (dc *Context) Replace(ctx context.Context, dialogID string, options any) (Result, error) {
	if active := dc.Active(); active != nil {
		dc.state.Stack = dc.state.Stack[:len(dc.state.Stack)-1]
	}
	return dc.Begin(ctx, dialogID, options)
}

// Prompt begins the registered prompt dialog promptID with the given options.
// A prompt is just a single-step dialog pushed onto the stack.
func (dc *Context) Prompt(ctx context.Context, promptID string, opts PromptOptions) (Result, error) {
	return dc.Begin(ctx, promptID, opts)
}
