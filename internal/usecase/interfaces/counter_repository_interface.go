package interfaces

import "context"

// ICounterRepository is the sequence generator behind human-readable serials.
//
// Next must be atomic under concurrent callers (find-and-increment with
// upsert, not read-modify-write). Values are strictly increasing and never
// repeat per counter name; gaps are fine when an order creation fails after
// the increment.

type ICounterRepository interface {
	Next(ctx context.Context, counterName string) (int64, error)
}
