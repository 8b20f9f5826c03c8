package checker

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"stackscan/api"
)

// Default lookup cadence: a token bucket at 5 requests per second with a
// burst of 5. The public node publishes no rate limit; this matches the
// cadence the tool has always used without getting throttled.
const (
	DefaultRate  rate.Limit = 5
	DefaultBurst            = 5
)

// Record is one qualifying address in the output mapping. Balance is in
// whole STX.
type Record struct {
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
}

// ErrorKind classifies a skipped entry for reporting. It never drives
// control flow: every kind is skipped the same way.
type ErrorKind string

const (
	KindNetwork      ErrorKind = "network"
	KindParse        ErrorKind = "parse"
	KindMissingField ErrorKind = "missing-field"
)

// EntryError records a single entry the scan had to skip.
type EntryError struct {
	Name    string
	Address string
	Kind    ErrorKind
	Err     error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s (%s): %s error: %v", e.Name, e.Address, e.Kind, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// BalanceFetcher is the api.Client surface the checker needs.
type BalanceFetcher interface {
	GetBalance(ctx context.Context, address string) (*big.Int, error)
}

// Result reports the outcome of one entry to the Progress hook.
type Result struct {
	Name      string
	Address   string
	Balance   decimal.Decimal
	Qualified bool
	Err       error
}

// Checker scans a name-to-address mapping and keeps the entries whose STX
// balance strictly exceeds the threshold.
type Checker struct {
	client    BalanceFetcher
	threshold decimal.Decimal
	limiter   *rate.Limiter

	// Progress, when set, is called after each entry with its outcome.
	Progress func(Result)
}

// New creates a checker with the given threshold in STX. A nil limiter gets
// the default cadence.
func New(client BalanceFetcher, threshold float64, limiter *rate.Limiter) *Checker {
	if limiter == nil {
		limiter = rate.NewLimiter(DefaultRate, DefaultBurst)
	}
	return &Checker{
		client:    client,
		threshold: decimal.NewFromFloat(threshold),
		limiter:   limiter,
	}
}

// NormalizeAddress strips surrounding whitespace and stray quote characters
// that tend to survive copy-pasting addresses into the input file.
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	address = strings.ReplaceAll(address, `"`, "")
	return strings.ReplaceAll(address, "'", "")
}

// Check looks up every address and returns the entries whose balance strictly
// exceeds the threshold, keyed by name, together with the entries it skipped.
// Names are processed in sorted order so two runs against unchanged balances
// produce identical output. A failing entry never aborts the batch.
func (c *Checker) Check(ctx context.Context, addresses map[string]string) (map[string]Record, []EntryError) {
	names := make([]string, 0, len(addresses))
	for name := range addresses {
		names = append(names, name)
	}
	sort.Strings(names)

	qualifying := make(map[string]Record)
	var skipped []EntryError

	for _, name := range names {
		address := NormalizeAddress(addresses[name])

		balance, err := c.lookup(ctx, address)
		if err != nil {
			skipped = append(skipped, EntryError{
				Name:    name,
				Address: address,
				Kind:    classify(err),
				Err:     err,
			})
			if c.Progress != nil {
				c.Progress(Result{Name: name, Address: address, Err: err})
			}
			continue
		}

		qualified := balance.GreaterThan(c.threshold)
		if qualified {
			qualifying[name] = Record{
				Address: address,
				Balance: balance.InexactFloat64(),
			}
		}
		if c.Progress != nil {
			c.Progress(Result{Name: name, Address: address, Balance: balance, Qualified: qualified})
		}
	}

	return qualifying, skipped
}

// lookup fetches one balance and converts micro-STX to STX.
func (c *Checker) lookup(ctx context.Context, address string) (decimal.Decimal, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return decimal.Zero, err
	}

	micro, err := c.client.GetBalance(ctx, address)
	if err != nil {
		return decimal.Zero, err
	}

	// 1 STX = 1,000,000 micro-STX
	return decimal.NewFromBigInt(micro, -6), nil
}

func classify(err error) ErrorKind {
	var statusErr *api.StatusError
	switch {
	case errors.Is(err, api.ErrMissingBalance):
		return KindMissingField
	case errors.Is(err, api.ErrBadResponse):
		return KindParse
	case errors.As(err, &statusErr):
		return KindNetwork
	default:
		// Transport errors, timeouts, cancellation.
		return KindNetwork
	}
}
