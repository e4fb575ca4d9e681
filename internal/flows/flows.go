// Package flows wires the bug-report bot's dialogs: a router that dispatches
// on recognized intent, a greeting, the bug-report waterfall, and the
// bug-type lookup.
package flows

import (
	"log/slog"

	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/pkg/dialog"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
	"github.com/aretw0/parley/pkg/state"
)

// Dialog IDs. The router is what the host begins on a fresh stack.
const (
	DialogMain = "main"

	dialogGreeting     = "greeting"
	promptGreetingName = "greeting.name"

	dialogBugReport       = "bugReport"
	promptBugDescription  = "bugReport.description"
	promptBugCallbackTime = "bugReport.callbackTime"
	promptBugPhoneNumber  = "bugReport.phoneNumber"
	promptBugCategory     = "bugReport.bug"

	dialogBugType = "bugType"
)

// Deps are the collaborators the flows close over.
type Deps struct {
	State      *state.Service
	Recognizer ports.Recognizer
	Catalog    domain.Catalog
	Logger     *slog.Logger
}

// Register adds every dialog and prompt to the set. Registration order does
// not matter; dialogs reference each other by ID at run time.
func Register(set *dialog.Set, deps Deps) error {
	if deps.Catalog == nil {
		deps.Catalog = domain.DefaultCatalog()
	}
	if deps.Logger == nil {
		deps.Logger = logging.NewNop()
	}

	for _, d := range []dialog.Dialog{
		newRouter(deps),
		newGreeting(deps),
		dialog.NewTextPrompt(promptGreetingName, nil),
		newBugReport(deps),
		dialog.NewTextPrompt(promptBugDescription, nil),
		dialog.NewDateTimePrompt(promptBugCallbackTime, dialog.TimeOfDayWindow(callbackWindowStart, callbackWindowEnd)),
		dialog.NewTextPrompt(promptBugPhoneNumber, dialog.NorthAmericanPhone()),
		dialog.NewChoicePrompt(promptBugCategory, nil),
		newBugType(deps),
	} {
		if err := set.Add(d); err != nil {
			return err
		}
	}
	return nil
}
