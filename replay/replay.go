// Package replay drives a full settlement run: it reads records from the CSV
// boundary, applies them through the engine in input order, and reports
// rejections on the diagnostic channel without ever aborting the stream.
//
// The log-and-continue policy lives here, not in the engine, so the engine
// stays pure with respect to I/O.
package replay

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/hameerabbasi/payment-engine/csvio"
	"github.com/hameerabbasi/payment-engine/engine"
	"github.com/hameerabbasi/payment-engine/log"
)

// Summary describes the outcome of one replay.
type Summary struct {
	// Applied counts records the engine accepted.
	Applied int
	// RejectedRows counts rows the reader could not decode.
	RejectedRows int
	// RejectedRecords counts well-formed records the engine rejected.
	RejectedRecords int
}

// Rejected returns the total number of rejected rows and records.
func (s Summary) Rejected() int {
	return s.RejectedRows + s.RejectedRecords
}

// Run replays every record from r through eng. Undecodable rows and engine
// rejections are logged and skipped; only a stream-level read failure aborts
// the run. The returned Summary is valid even when err is non-nil, covering
// everything applied up to the failure.
func Run(ctx context.Context, r *csvio.Reader, eng *engine.Engine, logger log.Logger) (Summary, error) {
	logger = logger.With(log.String("run_id", uuid.NewString()))

	var summary Summary

	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			var rowErr csvio.RowError
			if errors.As(err, &rowErr) {
				summary.RejectedRows++
				logger.Log(ctx, log.LevelWarn, "skipping undecodable row",
					log.Int("line", rowErr.Line),
					log.Err(rowErr.Err),
				)

				continue
			}

			return summary, fmt.Errorf("input stream failed: %w", err)
		}

		if err := eng.Apply(rec); err != nil {
			summary.RejectedRecords++

			var domainErr engine.DomainError
			if errors.As(err, &domainErr) {
				logger.Log(ctx, log.LevelWarn, "record rejected",
					log.String("kind", string(rec.Kind())),
					log.Uint16("client", rec.Client()),
					log.Uint32("tx", rec.Tx()),
					log.String("code", string(domainErr.Code)),
					log.String("reason", domainErr.Message),
				)
			} else {
				logger.Log(ctx, log.LevelWarn, "record rejected", log.Err(err))
			}

			continue
		}

		summary.Applied++
	}

	logger.Log(ctx, log.LevelInfo, "replay finished",
		log.Int("applied", summary.Applied),
		log.Int("rejected_rows", summary.RejectedRows),
		log.Int("rejected_records", summary.RejectedRecords),
	)

	return summary, nil
}
