package dialog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/turn"
)

// PromptKind selects the type-specific recognition applied to raw input.
type PromptKind string

const (
	PromptText     PromptKind = "text"
	PromptDateTime PromptKind = "datetime"
	PromptChoice   PromptKind = "choice"
)

// keyAttempts tracks rejected answers in the prompt's frame state.
const keyAttempts = "attempts"

// PromptOptions configure a single prompt invocation. They are stored on the
// prompt's frame and survive persistence between the asking turn and the
// answering turn.
type PromptOptions struct {
	// Prompt is the question sent when the prompt begins.
	Prompt string `json:"prompt"                 mapstructure:"prompt"`
	// RetryPrompt is sent after a rejected answer. Empty means re-send Prompt.
	RetryPrompt string `json:"retry_prompt,omitempty" mapstructure:"retry_prompt"`
	// Choices constrains a choice prompt to a fixed label set.
	Choices []string `json:"choices,omitempty"      mapstructure:"choices"`
	// MaxAttempts bounds rejected answers before the prompt gives up and
	// ends with a nil value. Zero means unlimited retries.
	MaxAttempts int `json:"max_attempts,omitempty" mapstructure:"max_attempts"`
}

// Recognized is the outcome of type-specific recognition of raw input.
type Recognized struct {
	Succeeded bool
	Value     any
}

// Validator accepts or rejects a recognized value. Validators never error;
// rejection re-issues the prompt.
type Validator func(ctx context.Context, tc *turn.Context, recognized Recognized) bool

// Prompt is a single-step dialog implementing the ask/validate/retry
// sub-protocol. While its frame is on top of the stack it is Awaiting: each
// inbound turn is recognized and validated, and either ends the prompt with
// the accepted value or re-asks and stays suspended.
type Prompt struct {
	id       string
	kind     PromptKind
	validate Validator
}

// NewTextPrompt creates a prompt accepting any non-empty text.
func NewTextPrompt(id string, validate Validator) *Prompt {
	return &Prompt{id: id, kind: PromptText, validate: validate}
}

// NewDateTimePrompt creates a prompt that parses input as a date/time.
func NewDateTimePrompt(id string, validate Validator) *Prompt {
	return &Prompt{id: id, kind: PromptDateTime, validate: validate}
}

// NewChoicePrompt creates a prompt constrained to the option set supplied in
// PromptOptions.Choices, matched case-insensitively or by 1-based index.
func NewChoicePrompt(id string, validate Validator) *Prompt {
	return &Prompt{id: id, kind: PromptChoice, validate: validate}
}

// ID returns the registration name.
func (p *Prompt) ID() string {
	return p.id
}

// Begin sends the question and suspends awaiting the next turn's input.
func (p *Prompt) Begin(ctx context.Context, dc *Context, options any) (Result, error) {
	opts, err := p.options(options)
	if err != nil {
		return Result{}, err
	}
	dc.Turn().SendText("%s", p.render(opts.Prompt, opts))
	return Result{Status: StatusWaiting}, nil
}

// Continue recognizes and validates the turn's input. Acceptance pops the
// frame and delivers the value to the parent; rejection re-asks and stays
// Awaiting, unless MaxAttempts is exhausted.
func (p *Prompt) Continue(ctx context.Context, dc *Context) (Result, error) {
	instance := dc.Active()
	opts, err := p.options(instance.Options)
	if err != nil {
		return Result{}, err
	}

	recognized := p.recognize(dc.Turn().Activity().Text, opts)
	if recognized.Succeeded && (p.validate == nil || p.validate(ctx, dc.Turn(), recognized)) {
		return dc.End(ctx, recognized.Value)
	}

	attempts := intStateValue(instance, keyAttempts) + 1
	instance.State[keyAttempts] = attempts

	dc.set.logger.Debug("prompt rejected", "dialog_id", p.id, "attempts", attempts)
	if dc.set.hooks.OnPromptRetry != nil {
		dc.set.hooks.OnPromptRetry(ctx, &domain.PromptRetryEvent{
			Timestamp: time.Now(),
			DialogID:  p.id,
			Attempts:  attempts,
		})
	}

	if opts.MaxAttempts > 0 && attempts >= opts.MaxAttempts {
		return dc.End(ctx, nil)
	}

	retry := opts.RetryPrompt
	if retry == "" {
		retry = opts.Prompt
	}
	dc.Turn().SendText("%s", p.render(retry, opts))
	return Result{Status: StatusWaiting}, nil
}

// Resume re-asks the question. Prompts have no children in practice; this
// covers a parent re-entering a prompt frame after an unexpected pop.
func (p *Prompt) Resume(ctx context.Context, dc *Context, _ any) (Result, error) {
	opts, err := p.options(dc.Active().Options)
	if err != nil {
		return Result{}, err
	}
	dc.Turn().SendText("%s", p.render(opts.Prompt, opts))
	return Result{Status: StatusWaiting}, nil
}

// options rehydrates PromptOptions from the frame, which holds either the
// live struct (same turn) or a JSON map (after persistence).
func (p *Prompt) options(raw any) (PromptOptions, error) {
	if opts, ok := raw.(PromptOptions); ok {
		return opts, nil
	}
	var opts PromptOptions
	if err := DecodeOptions(raw, &opts); err != nil {
		return PromptOptions{}, fmt.Errorf("prompt %q options: %w", p.id, err)
	}
	return opts, nil
}

// render appends the numbered option list for choice prompts.
func (p *Prompt) render(text string, opts PromptOptions) string {
	if p.kind != PromptChoice || len(opts.Choices) == 0 {
		return text
	}
	var b strings.Builder
	b.WriteString(text)
	for i, choice := range opts.Choices {
		fmt.Fprintf(&b, "\n%d. %s", i+1, choice)
	}
	return b.String()
}

func (p *Prompt) recognize(input string, opts PromptOptions) Recognized {
	input = strings.TrimSpace(input)

	switch p.kind {
	case PromptDateTime:
		if t, ok := ParseDateTime(input); ok {
			return Recognized{Succeeded: true, Value: t}
		}
		return Recognized{}

	case PromptChoice:
		if choice, ok := matchChoice(input, opts.Choices); ok {
			return Recognized{Succeeded: true, Value: choice}
		}
		return Recognized{}

	default:
		if input == "" {
			return Recognized{}
		}
		return Recognized{Succeeded: true, Value: input}
	}
}

// matchChoice resolves input to a canonical choice label, either by 1-based
// index or by case-insensitive text match.
func matchChoice(input string, choices []string) (string, bool) {
	if idx, err := strconv.Atoi(input); err == nil {
		if idx >= 1 && idx <= len(choices) {
			return choices[idx-1], true
		}
		return "", false
	}
	for _, choice := range choices {
		if strings.EqualFold(input, choice) {
			return choice, true
		}
	}
	return "", false
}

// intStateValue reads an int frame value, tolerating JSON numeric types.
func intStateValue(instance *domain.DialogInstance, key string) int {
	switch v := instance.State[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case json.Number:
		i, _ := v.Int64()
		return int(i)
	}
	return 0
}
