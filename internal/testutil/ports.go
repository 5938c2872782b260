package testutil

import (
	"net"
	"sync"
	"testing"
)

var (
	portMutex sync.Mutex
	usedPorts = make(map[int]struct{})
)

// GetRandomPort reserves a free TCP port for a test listener. Ports handed
// out earlier in the same process are not reused.
func GetRandomPort(t *testing.T) int {
	t.Helper()
	portMutex.Lock()
	defer portMutex.Unlock()

	for {
		listener, err := net.Listen("tcp", ":0")
		if err != nil {
			t.Fatalf("failed to get random port: %v", err)
		}
		port := listener.Addr().(*net.TCPAddr).Port
		if err := listener.Close(); err != nil {
			t.Fatalf("failed to close listener: %v", err)
		}
		if _, taken := usedPorts[port]; taken {
			continue
		}
		usedPorts[port] = struct{}{}
		return port
	}
}
