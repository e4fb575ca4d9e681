/*
Package ports defines the driven-side interfaces of the Parley engine:
state persistence, distributed locking, and the external NLU collaborator.

Adapters implementing these interfaces live under pkg/adapters and
internal/adapters. The shared behavioral contract for StateStore
implementations lives in pkg/ports/tests.
*/
package ports
