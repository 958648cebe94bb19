package unix

import (
	"net"

	"github.com/Dario48true/nvrpc/rpc/common"
	"github.com/Dario48true/nvrpc/rpc/transport"
)

// clientConnector implements the IRPCClientTransport interface for Unix sockets
type clientConnector struct{}

// NewUnixClientTransport creates a new Unix client transport
func NewUnixClientTransport() transport.IRPCClientTransport {
	return &clientConnector{}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCClientTransport)
// --------------------------------------------------------------------------

func (c *clientConnector) GetName() string {
	return "unix"
}

func (c *clientConnector) Connect(config common.ClientConfig) (transport.Conn, error) {
	return net.Dial("unix", config.Transport.Endpoint)
}
