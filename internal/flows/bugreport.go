package flows

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/parley/pkg/dialog"
	"github.com/aretw0/parley/pkg/domain"
)

// Callback calls are accepted between 9 am and 5 pm inclusive.
const (
	callbackWindowStart = 9 * time.Hour
	callbackWindowEnd   = 17 * time.Hour
)

// bugReportOptions pre-fill answers recognized from the triggering
// utterance. A filled field makes its step skip the prompt.
type bugReportOptions struct {
	Description  string     `json:"description,omitempty"   mapstructure:"description"`
	CallbackTime *time.Time `json:"callback_time,omitempty" mapstructure:"callback_time"`
	PhoneNumber  string     `json:"phone_number,omitempty"  mapstructure:"phone_number"`
	Bug          string     `json:"bug,omitempty"           mapstructure:"bug"`
}

// Waterfall values keys. The callback time is stored as an RFC3339 string so
// the values map survives JSON persistence unchanged.
const (
	valDescription  = "description"
	valCallbackTime = "callbackTime"
	valPhoneNumber  = "phoneNumber"
	valBug          = "bug"
)

// newBugReport builds the five-step bug-report waterfall. Each step first
// harvests the previous step's answer, then either skips on a seeded option
// or prompts. The final step persists the profile and emits the summary.
func newBugReport(deps Deps) *dialog.Waterfall {
	description := func(ctx context.Context, sc *dialog.StepContext) (dialog.Result, error) {
		opts, err := optionsOf(sc)
		if err != nil {
			return dialog.Result{}, err
		}
		if opts.Description != "" {
			return sc.Next(ctx, opts.Description)
		}
		return sc.Prompt(ctx, promptBugDescription, dialog.PromptOptions{
			Prompt: "Enter a description for your report",
		})
	}

	callbackTime := func(ctx context.Context, sc *dialog.StepContext) (dialog.Result, error) {
		sc.Values[valDescription], _ = sc.Result.(string)

		opts, err := optionsOf(sc)
		if err != nil {
			return dialog.Result{}, err
		}
		if opts.CallbackTime != nil {
			return sc.Next(ctx, *opts.CallbackTime)
		}
		return sc.Prompt(ctx, promptBugCallbackTime, dialog.PromptOptions{
			Prompt:      "Please enter in a callback time",
			RetryPrompt: "The value entered must be between the hours of 9 am and 5 pm.",
		})
	}

	phoneNumber := func(ctx context.Context, sc *dialog.StepContext) (dialog.Result, error) {
		if t, ok := sc.Result.(time.Time); ok {
			sc.Values[valCallbackTime] = t.Format(time.RFC3339)
		}

		opts, err := optionsOf(sc)
		if err != nil {
			return dialog.Result{}, err
		}
		if opts.PhoneNumber != "" {
			return sc.Next(ctx, opts.PhoneNumber)
		}
		return sc.Prompt(ctx, promptBugPhoneNumber, dialog.PromptOptions{
			Prompt:      "Please enter in a phone number that we can call you back at",
			RetryPrompt: "Please enter a valid phone number",
		})
	}

	bug := func(ctx context.Context, sc *dialog.StepContext) (dialog.Result, error) {
		sc.Values[valPhoneNumber], _ = sc.Result.(string)

		opts, err := optionsOf(sc)
		if err != nil {
			return dialog.Result{}, err
		}
		if opts.Bug != "" {
			return sc.Next(ctx, opts.Bug)
		}
		return sc.Prompt(ctx, promptBugCategory, dialog.PromptOptions{
			Prompt:  "Please enter the type of bug.",
			Choices: domain.Categories(),
		})
	}

	summary := func(ctx context.Context, sc *dialog.StepContext) (dialog.Result, error) {
		sc.Values[valBug], _ = sc.Result.(string)

		userKey := sc.Turn().UserKey()
		profile, err := deps.State.UserProfile(ctx, userKey)
		if err != nil {
			return dialog.Result{}, err
		}
		profile.Description = stringValue(sc.Values, valDescription)
		profile.PhoneNumber = stringValue(sc.Values, valPhoneNumber)
		profile.Bug = stringValue(sc.Values, valBug)
		profile.CallbackTime = nil
		if t, err := time.Parse(time.RFC3339, stringValue(sc.Values, valCallbackTime)); err == nil {
			profile.CallbackTime = &t
		}
		if err := deps.State.SaveUserProfile(ctx, userKey, profile); err != nil {
			return dialog.Result{}, err
		}

		tc := sc.Turn()
		tc.SendText("Here is a summary of your bug report:")
		tc.SendText("Description: %s", profile.Description)
		tc.SendText("Callback Time: %s", formatCallbackTime(profile.CallbackTime))
		tc.SendText("Phone Number: %s", profile.PhoneNumber)
		tc.SendText("Bug: %s", profile.Bug)

		return sc.End(ctx, nil)
	}

	return dialog.NewWaterfall(dialogBugReport, description, callbackTime, phoneNumber, bug, summary)
}

func optionsOf(sc *dialog.StepContext) (bugReportOptions, error) {
	if opts, ok := sc.Options.(bugReportOptions); ok {
		return opts, nil
	}
	var opts bugReportOptions
	if err := dialog.DecodeOptions(sc.Options, &opts); err != nil {
		return bugReportOptions{}, fmt.Errorf("bug report options: %w", err)
	}
	return opts, nil
}

func stringValue(values map[string]any, key string) string {
	s, _ := values[key].(string)
	return s
}

func formatCallbackTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("3:04 PM")
}

var (
	phoneSeedCheck    = dialog.NorthAmericanPhone()
	callbackSeedCheck = dialog.TimeOfDayWindow(callbackWindowStart, callbackWindowEnd)
)

// phoneSeedValid applies the same acceptance rule the phone prompt uses to a
// recognizer-seeded value.
func phoneSeedValid(s string) bool {
	return phoneSeedCheck(context.Background(), nil, dialog.Recognized{Succeeded: true, Value: s})
}

// inCallbackWindow applies the callback-window rule to a recognizer-seeded
// time.
func inCallbackWindow(t time.Time) bool {
	return callbackSeedCheck(context.Background(), nil, dialog.Recognized{Succeeded: true, Value: t})
}
