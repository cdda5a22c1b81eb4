// Package engine applies validated transaction records against the client
// ledger, enforcing the dispute/resolve/chargeback lifecycle.
//
// Core flow:
//   - Apply consumes one record at a time, strictly in input order.
//   - Funding records (deposit/withdrawal) mutate available balances and are
//     remembered so they can be disputed later.
//   - Lifecycle records (dispute/resolve/chargeback) move funds between
//     available and held according to the referenced funding record.
//
// Every rejection is a typed DomainError returned to the caller; the engine
// never aborts a replay and performs no I/O of its own.
package engine
