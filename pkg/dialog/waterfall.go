package dialog

import (
	"context"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/turn"
)

// Frame state keys for waterfall dialogs.
const (
	keyStep   = "step"
	keyValues = "values"
)

// Step is one stage of a waterfall. A step must do exactly one of: return
// sc.Next (chain synchronously), issue a prompt or begin a child (suspend),
// or sc.End the waterfall.
type Step func(ctx context.Context, sc *StepContext) (Result, error)

// Waterfall runs an ordered sequence of steps sharing an options payload and
// a scratch values map. Resumption after a suspension re-enters at the step
// AFTER the one that suspended, with the child's end value as input.
type Waterfall struct {
	id    string
	steps []Step
}

// NewWaterfall creates a waterfall dialog from steps in execution order.
func NewWaterfall(id string, steps ...Step) *Waterfall {
	return &Waterfall{id: id, steps: steps}
}

// ID returns the registration name.
func (w *Waterfall) ID() string {
	return w.id
}

// Begin initializes the frame (step 0, empty values) and runs the first step
// with a nil prior result.
func (w *Waterfall) Begin(ctx context.Context, dc *Context, _ any) (Result, error) {
	return w.run(ctx, dc, 0, nil)
}

// Continue advances to the next step with the raw turn text as input. This
// only fires when a step suspended without pushing a child dialog; when a
// child exists, the child receives the turn instead.
func (w *Waterfall) Continue(ctx context.Context, dc *Context) (Result, error) {
	return w.run(ctx, dc, stepIndexOf(dc.Active())+1, dc.Turn().Activity().Text)
}

// Resume advances to the next step with the ended child's value as input.
func (w *Waterfall) Resume(ctx context.Context, dc *Context, value any) (Result, error) {
	return w.run(ctx, dc, stepIndexOf(dc.Active())+1, value)
}

func (w *Waterfall) run(ctx context.Context, dc *Context, index int, input any) (Result, error) {
	// Running past the last step is an implicit end with a nil value.
	if index >= len(w.steps) {
		return dc.End(ctx, nil)
	}

	instance := dc.Active()
	instance.State[keyStep] = index

	sc := &StepContext{
		dc:        dc,
		waterfall: w,
		instance:  instance,
		Options:   instance.Options,
		Values:    valuesOf(instance),
		Result:    input,
	}
	return w.steps[index](ctx, sc)
}

// StepContext is the per-invocation view a step receives: the shared options,
// the mutable values map, and the previous step's (or ended child's) result.
type StepContext struct {
	dc        *Context
	waterfall *Waterfall
	instance  *domain.DialogInstance

	// Options is the payload supplied when the waterfall was begun. After a
	// persistence round-trip it may be a decoded JSON map; use DecodeOptions
	// to rehydrate it into a typed struct.
	Options any

	// Values is scratch data shared across this waterfall's steps. Mutations
	// persist with the frame.
	Values map[string]any

	// Result is nil on first entry, the prior step's Next value when
	// chaining, or the child dialog's end value on resumption.
	Result any
}

// Turn returns the current turn context.
func (sc *StepContext) Turn() *turn.Context {
	return sc.dc.Turn()
}

// Next invokes the following step immediately with value as its input.
// No turn boundary crosses; chains run synchronously within one turn.
func (sc *StepContext) Next(ctx context.Context, value any) (Result, error) {
	return sc.waterfall.run(ctx, sc.dc, stepIndexOf(sc.instance)+1, value)
}

// Prompt suspends the waterfall on a registered prompt dialog.
func (sc *StepContext) Prompt(ctx context.Context, promptID string, opts PromptOptions) (Result, error) {
	return sc.dc.Prompt(ctx, promptID, opts)
}

// Begin suspends the waterfall on a child dialog.
func (sc *StepContext) Begin(ctx context.Context, dialogID string, options any) (Result, error) {
	return sc.dc.Begin(ctx, dialogID, options)
}

// Replace swaps this waterfall's frame for another dialog without growing
// the stack.
func (sc *StepContext) Replace(ctx context.Context, dialogID string, options any) (Result, error) {
	return sc.dc.Replace(ctx, dialogID, options)
}

// End finishes the waterfall with a final value, resuming the parent frame.
func (sc *StepContext) End(ctx context.Context, value any) (Result, error) {
	return sc.dc.End(ctx, value)
}

// stepIndexOf reads the persisted step index, tolerating the numeric types a
// JSON round-trip produces.
func stepIndexOf(instance *domain.DialogInstance) int {
	return intStateValue(instance, keyStep)
}

// valuesOf returns the frame's values map, creating it on first use.
func valuesOf(instance *domain.DialogInstance) map[string]any {
	if m, ok := instance.State[keyValues].(map[string]any); ok {
		return m
	}
	m := make(map[string]any)
	instance.State[keyValues] = m
	return m
}
