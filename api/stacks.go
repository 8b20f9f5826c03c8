package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrMissingBalance means the response parsed but carried no balance field.
	ErrMissingBalance = errors.New("no balance field in response")

	// ErrBadResponse means the response body could not be decoded as a balance.
	ErrBadResponse = errors.New("malformed balance response")
)

// GetBalance fetches the micro-STX balance for a Stacks address. The extended
// address endpoint is queried first; if it answers with a non-2xx status the
// v2 accounts endpoint is tried once with the same decode logic. Transport
// failures on the primary are not retried.
func (c *Client) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	body, err := c.getJSON(ctx, fmt.Sprintf("%s/%s", c.baseURL, address))
	if err != nil {
		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			return nil, err
		}

		body, err = c.getJSON(ctx, fmt.Sprintf("%s/%s", c.accountsURL, address))
		if err != nil {
			return nil, fmt.Errorf("fallback lookup failed after %v: %w", statusErr, err)
		}
	}

	return decodeBalance(body)
}

// decodeBalance extracts the balance field as an integer number of micro-STX.
// A string value with a 0x prefix parses as base-16, any other string as
// base-10, and a bare JSON number as a decimal integer.
func decodeBalance(body []byte) (*big.Int, error) {
	var account AccountBalance
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	if len(account.Balance) == 0 {
		return nil, ErrMissingBalance
	}

	var s string
	if err := json.Unmarshal(account.Balance, &s); err != nil {
		// Not a quoted string, so the node sent a bare number.
		s = string(account.Balance)
	}
	s = strings.TrimSpace(s)

	micro := new(big.Int)
	if strings.HasPrefix(s, "0x") {
		if _, ok := micro.SetString(strings.TrimPrefix(s, "0x"), 16); !ok {
			return nil, fmt.Errorf("%w: unparseable hex balance %q", ErrBadResponse, s)
		}
		return micro, nil
	}

	if _, ok := micro.SetString(s, 10); !ok {
		return nil, fmt.Errorf("%w: unparseable balance %q", ErrBadResponse, s)
	}
	return micro, nil
}
