/*
Package dialog implements the turn-based dialog orchestration engine: a
registry of named dialogs (Set), a stack interpreter over persisted frames
(Context), the waterfall step abstraction, and the prompt/validate/retry
sub-protocol.

# Model

A conversation owns a stack of DialogInstance frames. Only the top frame is
active; frames below are dormant until the one above ends. Frames are plain
data, with behavior living in the registered dialog definitions looked up by
ID, so the entire resumption context serializes with the conversation state
and a different process can pick the conversation up on the next turn.

A turn ends in one of three states: Waiting (a reply was emitted and the
engine suspends until the next transport message), Complete (the stack
bottomed out), or Empty (continue was called with no active dialog; the host
typically starts its root dialog in response).

# Suspension

Suspension is cooperative and crosses transport calls: the engine never
blocks waiting for input. Issuing a prompt or beginning a child dialog
without ending it suspends the turn; the next inbound message resumes the
stack exactly where it left off.
*/
package dialog
