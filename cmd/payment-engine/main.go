// Command payment-engine replays a CSV of transaction records into final
// per-client account balances.
//
// The resulting ledger is printed as CSV on stdout; diagnostics (rejected
// rows and records) go to stderr as JSON.
//
//	payment-engine [flags] <input.csv>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hameerabbasi/payment-engine/csvio"
	"github.com/hameerabbasi/payment-engine/engine"
	"github.com/hameerabbasi/payment-engine/ledger"
	"github.com/hameerabbasi/payment-engine/replay"
	"github.com/hameerabbasi/payment-engine/zaplog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "payment-engine:", err)
		os.Exit(1)
	}
}

func run() error {
	logLevel := flag.String("log-level", "warn", "diagnostic verbosity: error, warn, info, or debug")
	lockedDisputes := flag.Bool("locked-disputes", false, "allow dispute lifecycle records on locked accounts")
	redispute := flag.Bool("redispute", false, "allow a new dispute against a charged-back transaction")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: payment-engine [flags] <input.csv>")
	}

	input, err := os.Open(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer input.Close()

	logger, err := zaplog.New(zaplog.Config{Level: *logLevel})
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	ctx := context.Background()
	defer logger.Sync(ctx) //nolint:errcheck

	accounts := ledger.New()
	eng := engine.New(accounts, engine.Policy{
		DisputeOnLockedAccount:   *lockedDisputes,
		RedisputeAfterChargeback: *redispute,
	})

	if _, err := replay.Run(ctx, csvio.NewReader(input), eng, logger); err != nil {
		return err
	}

	return csvio.WriteAccounts(os.Stdout, accounts.Accounts())
}
