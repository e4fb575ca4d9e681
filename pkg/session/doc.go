// Package session serializes turn processing per conversation.
//
// A turn loads state, mutates it, and writes it back. Two turns for the same
// conversation interleaving that sequence would lose updates, so the manager
// hands out a per-key critical section. An optional distributed locker
// extends the guarantee across processes sharing a store.
package session
