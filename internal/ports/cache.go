package ports

import "context"

// RegistrationLock serializes registration by email. The store has no
// guaranteed unique index, so the orchestrator takes this keyed lock
// between its uniqueness lookup and its insert; the loser of a concurrent
// race observes EmailTaken instead of a duplicate row.
type RegistrationLock interface {
	Acquire(ctx context.Context, email string) (bool, error)
	Release(ctx context.Context, email string) error
}
