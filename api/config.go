package api

import "time"

// Stacks node endpoints
const (
	// MainnetStacksAPI is the extended address endpoint; balance lookups
	// append "/{address}".
	MainnetStacksAPI = "https://stacks-node-api.mainnet.stacks.co/extended/v1/address"

	// MainnetAccountsAPI is the older accounts endpoint, used as a fallback
	// when the extended endpoint answers with a non-2xx status.
	MainnetAccountsAPI = "https://stacks-node-api.mainnet.stacks.co/v2/accounts"
)

// DefaultTimeout bounds every balance lookup so a stalled node cannot hang
// the batch.
const DefaultTimeout = 15 * time.Second
