package domain

import "errors"

var (
	// ErrPartyNotFound is returned when a party id does not resolve.
	// The balance sync reports this instead of silently skipping.
	ErrPartyNotFound = errors.New("party not found")

	// ErrTransactionNotFound is returned when a transaction id does not resolve.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPartyHasTransactions rejects deleting a party that still has
	// ledger history.
	ErrPartyHasTransactions = errors.New("party has transactions and cannot be deleted")
)
