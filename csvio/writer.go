package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hameerabbasi/payment-engine/ledger"
)

var outputHeader = []string{"client", "available", "held", "total", "locked"}

// WriteAccounts renders accounts as CSV on w, one row per account, preserving
// the given order. Pass ledger.Accounts() for a deterministic, client-sorted
// report.
func WriteAccounts(w io.Writer, accounts []*ledger.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(outputHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, account := range accounts {
		row := []string{
			strconv.FormatUint(uint64(account.Client), 10),
			account.Available.String(),
			account.Held.String(),
			account.Total().String(),
			strconv.FormatBool(account.Locked),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write account %d: %w", account.Client, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
