// Package harness provides utilities for integration testing the termdock CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - TERMDOCK_HOME: Isolated per test (temp directory)
//   - TERMDOCK_DEBUG: Disabled to reduce noise
//   - TERMDOCK_ORDER_BACKEND: Cleared so settings and flags decide
package harness
