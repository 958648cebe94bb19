package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Defaults
// --------------------------------------------------------------------------

const (
	// DefaultPollIntervalMs bounds how long the reader loop parks while the
	// transport has no input. It is also the latency with which the reader
	// observes a stop request.
	DefaultPollIntervalMs = 2

	// DefaultMaxWorkers limits the number of concurrently running inbound
	// handler dispatches. The reader and writer loops are not counted
	// against this limit.
	DefaultMaxWorkers = 32

	// DefaultBufferSize is the size of the buffered read and write halves
	// of the transport (64 KB, optimized for local IPC traffic).
	DefaultBufferSize = 64 * 1024
)

// --------------------------------------------------------------------------
// Client configuration structs
// --------------------------------------------------------------------------

// SocketConf holds buffer settings shared by all stream transports.
type SocketConf struct {
	ReadBufferSize  int
	WriteBufferSize int
}

// TCPConf holds TCP specific tuning options, ignored by other transports.
type TCPConf struct {
	TCPNoDelay      bool
	TCPKeepAliveSec int
	TCPLingerSec    int
}

// ClientTransportConfig describes how to reach the remote peer.
type ClientTransportConfig struct {
	// Endpoint is the address of the peer. Its format depends on the
	// transport: "host:port" for tcp, a socket path for unix, and a
	// "read-fd:write-fd" pair (or empty for stdin/stdout) for stdio.
	Endpoint string

	SocketConf
	TCPConf
}

// ClientConfig holds all configuration parameters for an RPC client.
type ClientConfig struct {
	Transport ClientTransportConfig

	// PollIntervalMs is the reader loop park interval in milliseconds
	PollIntervalMs int

	// MaxWorkers limits concurrent inbound handler dispatches
	MaxWorkers int

	// Logging configuration
	LogLevel string
}

// Validate applies defaults for unset values and rejects nonsensical ones.
func (c *ClientConfig) Validate() error {
	if c.PollIntervalMs < 0 {
		return fmt.Errorf("poll interval must not be negative: %d", c.PollIntervalMs)
	}
	if c.PollIntervalMs == 0 {
		c.PollIntervalMs = DefaultPollIntervalMs
	}
	if c.MaxWorkers < 0 {
		return fmt.Errorf("max workers must not be negative: %d", c.MaxWorkers)
	}
	if c.MaxWorkers == 0 {
		c.MaxWorkers = DefaultMaxWorkers
	}
	if c.Transport.ReadBufferSize <= 0 {
		c.Transport.ReadBufferSize = DefaultBufferSize
	}
	if c.Transport.WriteBufferSize <= 0 {
		c.Transport.WriteBufferSize = DefaultBufferSize
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return nil
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Client Configuration")
	addField("Poll Interval", fmt.Sprintf("%d ms", c.PollIntervalMs))
	addField("Max Workers", strconv.Itoa(c.MaxWorkers))
	addField("Log Level", c.LogLevel)

	addSection("Transport")
	addField("Endpoint", c.Transport.Endpoint)
	addField("Read Buffer", fmt.Sprintf("%d bytes", c.Transport.ReadBufferSize))
	addField("Write Buffer", fmt.Sprintf("%d bytes", c.Transport.WriteBufferSize))
	addField("TCP NoDelay", fmt.Sprintf("%t", c.Transport.TCPNoDelay))
	addField("TCP KeepAlive", fmt.Sprintf("%d sec", c.Transport.TCPKeepAliveSec))
	addField("TCP Linger", fmt.Sprintf("%d sec", c.Transport.TCPLingerSec))

	return sb.String()
}
