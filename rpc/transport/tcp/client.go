package tcp

import (
	"net"
	"time"

	"github.com/Dario48true/nvrpc/rpc/common"
	"github.com/Dario48true/nvrpc/rpc/transport"
)

// clientConnector implements the IRPCClientTransport interface for TCP sockets
type clientConnector struct{}

// NewTCPClientTransport creates a new TCP client transport
func NewTCPClientTransport() transport.IRPCClientTransport {
	return &clientConnector{}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCClientTransport)
// --------------------------------------------------------------------------

func (c *clientConnector) GetName() string {
	return "tcp"
}

func (c *clientConnector) Connect(config common.ClientConfig) (transport.Conn, error) {
	conn, err := net.Dial("tcp", config.Transport.Endpoint)
	if err != nil {
		return nil, err
	}

	if err := upgradeConnection(conn, config); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

// upgradeConnection applies TCP specific settings to an established connection
func upgradeConnection(conn net.Conn, config common.ClientConfig) error {
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return nil // Not a TCP connection, nothing to upgrade
	}

	// Disable Nagle's algorithm (TCPNoDelay) if configured
	if err := tcpConn.SetNoDelay(config.Transport.TCPNoDelay); err != nil {
		return err
	}

	// Set socket write buffer size if configured
	if config.Transport.WriteBufferSize > 0 {
		if err := tcpConn.SetWriteBuffer(config.Transport.WriteBufferSize); err != nil {
			return err
		}
	}

	// Set socket read buffer size if configured
	if config.Transport.ReadBufferSize > 0 {
		if err := tcpConn.SetReadBuffer(config.Transport.ReadBufferSize); err != nil {
			return err
		}
	}

	// Enable TCP keep-alive if configured
	if config.Transport.TCPKeepAliveSec > 0 {
		if err := tcpConn.SetKeepAlive(true); err != nil {
			return err
		}
		keepAlivePeriod := time.Duration(config.Transport.TCPKeepAliveSec) * time.Second
		if err := tcpConn.SetKeepAlivePeriod(keepAlivePeriod); err != nil {
			return err
		}
	}

	// Set TCP linger option if configured
	if config.Transport.TCPLingerSec > 0 {
		if err := tcpConn.SetLinger(config.Transport.TCPLingerSec); err != nil {
			return err
		}
	}

	return nil
}
