package flows

import (
	"context"

	"github.com/aretw0/parley/pkg/dialog"
	"github.com/aretw0/parley/pkg/ports"
)

// newRouter builds the top-level dialog. Every fresh turn lands here: the
// utterance goes to the recognizer, and the top intent picks the flow to
// run. A recognizer failure aborts the whole turn.
func newRouter(deps Deps) *dialog.Waterfall {
	dispatch := func(ctx context.Context, sc *dialog.StepContext) (dialog.Result, error) {
		utterance := sc.Turn().Activity().Text

		result, err := deps.Recognizer.Recognize(ctx, utterance)
		if err != nil {
			deps.Logger.Error("recognizer call failed", "err", err)
			return dialog.Result{}, err
		}
		deps.Logger.Debug("utterance recognized",
			"intent", string(result.TopIntent),
			"score", result.Score,
		)

		switch result.TopIntent {
		case ports.IntentGreeting:
			return sc.Begin(ctx, dialogGreeting, nil)

		case ports.IntentNewBugReport:
			return sc.Begin(ctx, dialogBugReport, seedBugReport(result.Entities))

		case ports.IntentQueryBugType:
			query := result.Entities.Bug
			if query == "" {
				query = utterance
			}
			return sc.Begin(ctx, dialogBugType, bugTypeOptions{Query: query})

		default:
			sc.Turn().SendText("I'm sorry I don't know what you mean.")
			return sc.End(ctx, nil)
		}
	}

	finish := func(ctx context.Context, sc *dialog.StepContext) (dialog.Result, error) {
		return sc.End(ctx, nil)
	}

	return dialog.NewWaterfall(DialogMain, dispatch, finish)
}

// seedBugReport converts recognized entities into pre-filled bug-report
// options. Values that fail local validation are dropped so the flow prompts
// for them instead of accepting junk.
func seedBugReport(entities ports.Entities) bugReportOptions {
	opts := bugReportOptions{
		Description: entities.Description,
		Bug:         entities.Bug,
	}
	if entities.PhoneNumber != "" && phoneSeedValid(entities.PhoneNumber) {
		opts.PhoneNumber = entities.PhoneNumber
	}
	if entities.CallbackTime != "" {
		if t, ok := dialog.ParseDateTime(entities.CallbackTime); ok && inCallbackWindow(t) {
			opts.CallbackTime = &t
		}
	}
	return opts
}
