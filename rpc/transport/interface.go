package transport

import (
	"io"
	"time"

	"github.com/Dario48true/nvrpc/rpc/common"
)

// --------------------------------------------------------------------------
// Connection
// --------------------------------------------------------------------------

// Conn is a connected duplex byte stream. Both net.Conn and *os.File
// satisfy it, so the same engine runs over sockets, pipes and raw file
// handles.
//
// The read half is touched only by the reader loop and the write half only
// by the writer loop, so Conn implementations need no internal locking
// beyond what the OS provides.
type Conn interface {
	io.ReadWriteCloser

	// SetReadDeadline bounds the next Read. It is the primitive behind the
	// reader loop's input-readiness probe.
	SetReadDeadline(t time.Time) error
}

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// IRPCClientTransport is the interface for transport-specific connection
// establishment (tcp, unix, stdio).
type IRPCClientTransport interface {
	// Connect establishes a connection based on the provided configuration
	Connect(config common.ClientConfig) (Conn, error)

	// GetName returns the name of the transport type (e.g., "unix", "tcp")
	GetName() string
}
