// Package parley is a turn-based dialog orchestration engine.
//
// A Bot owns a registry of dialogs, a scoped durable state store, and an
// external intent recognizer. Each inbound activity is processed as one
// turn: the conversation's persisted dialog stack is loaded, the active
// dialog consumes the input (or the router starts fresh), and the mutated
// stack is written back along with any replies produced.
//
// The engine holds nothing in memory between turns, so any process holding
// the store can handle any turn of any conversation.
package parley
