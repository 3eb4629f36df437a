package integration_test

import (
	"sync"
	"testing"

	"careerpilot_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// getServer lazily boots one shared server for the whole package. Tests
// keep out of each other's way by generating unique users.
func getServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}
