package flows

import (
	"context"

	"github.com/aretw0/parley/pkg/dialog"
)

// newGreeting builds the greeting flow: capture the user's name once, greet
// by name forever after.
func newGreeting(deps Deps) *dialog.Waterfall {
	askName := func(ctx context.Context, sc *dialog.StepContext) (dialog.Result, error) {
		profile, err := deps.State.UserProfile(ctx, sc.Turn().UserKey())
		if err != nil {
			return dialog.Result{}, err
		}
		if profile.Name != "" {
			return sc.Next(ctx, profile.Name)
		}
		return sc.Prompt(ctx, promptGreetingName, dialog.PromptOptions{
			Prompt: "What is your name?",
		})
	}

	greet := func(ctx context.Context, sc *dialog.StepContext) (dialog.Result, error) {
		name, _ := sc.Result.(string)

		userKey := sc.Turn().UserKey()
		profile, err := deps.State.UserProfile(ctx, userKey)
		if err != nil {
			return dialog.Result{}, err
		}
		if profile.Name == "" {
			profile.Name = name
			if err := deps.State.SaveUserProfile(ctx, userKey, profile); err != nil {
				return dialog.Result{}, err
			}
		}

		sc.Turn().SendText("Hi %s. How can I help you today?", profile.Name)
		return sc.End(ctx, nil)
	}

	return dialog.NewWaterfall(dialogGreeting, askName, greet)
}
