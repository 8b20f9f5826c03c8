package api

// Stacks node client.
//
// Files:
//   config.go - node endpoints and default timeout
//   types.go  - struct definitions for node responses
//   base.go   - core client functionality (client struct, constructors, HTTP helpers)
//   stacks.go - balance lookup with fallback and micro-STX decoding
//
// Usage:
//   client := api.NewClient()  // from base.go
//   micro, err := client.GetBalance(ctx, address)  // from stacks.go
