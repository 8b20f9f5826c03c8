package api

import "encoding/json"

// AccountBalance is the subset of the node's address response the scanner
// reads. Both the extended address endpoint and the v2 accounts endpoint
// carry the balance in this shape. The field is kept raw because the node
// returns it either as a string (decimal or 0x-prefixed hex) or as a bare
// JSON number.
type AccountBalance struct {
	Balance json.RawMessage `json:"balance"`
}
