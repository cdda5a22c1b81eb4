// Package record defines the validated transaction record consumed by the
// settlement engine.
//
// Records are constructed only through New (or the per-kind helpers), which
// reject structurally invalid shapes: a funding record without an amount, a
// lifecycle record carrying one, or a non-positive amount. Downstream code
// therefore never re-checks structural validity, only business rules.
package record
