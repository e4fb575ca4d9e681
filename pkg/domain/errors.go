package domain

import "errors"

// ErrUnknownDialog is returned when a dialog ID is begun or continued without
// being registered in the set. This is a programming error, not user input.
var ErrUnknownDialog = errors.New("unknown dialog")

// ErrNoActiveDialog is returned when a continue is attempted on an empty
// stack. Callers normally treat it as "start fresh" rather than a failure.
var ErrNoActiveDialog = errors.New("no active dialog")

// ErrNotFound is returned when a state payload does not exist for a key.
var ErrNotFound = errors.New("state not found")
