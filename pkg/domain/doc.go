/*
Package domain contains the core domain models for the Parley engine.

It defines the persisted shapes of a conversation (the dialog stack, the
user profile, the conversation data bag) plus the transport-facing Activity
type and the static bug-category catalog. This package is kept pure and free
of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Activity: one inbound user message or one outbound reply unit.
  - DialogState / DialogInstance: the serialized dialog call stack.
  - UserProfile: per-user state surviving across conversations.
  - ConversationState: per-conversation state, carrying the dialog stack
    under a reserved sub-key beside the free-form data bag.
  - Catalog: immutable bug-category metadata, injected rather than global.
*/
package domain
