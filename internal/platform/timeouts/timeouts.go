// Package timeouts defines shared timeout constants used across the service.
// Centralizing these values prevents drift between the server, client
// helpers, and tests, and makes the durations discoverable.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the identity service, including
// the health-check gate.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single identity RPC issued by a
// web-tier caller.
const GRPCRequest = 2 * time.Second

// Shutdown limits how long the server waits for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second
