package stdio

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Dario48true/nvrpc/rpc/common"
	"github.com/Dario48true/nvrpc/rpc/transport"
)

// clientConnector implements the IRPCClientTransport interface for
// pipe / file-handle pairs
type clientConnector struct{}

// NewStdioClientTransport creates a transport over a pair of file handles.
// With an empty endpoint it uses the process's own stdin/stdout, which is
// the wiring of a plugin host spawned by the editor. An endpoint of the
// form "R:W" names the read and write file descriptors explicitly.
func NewStdioClientTransport() transport.IRPCClientTransport {
	return &clientConnector{}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCClientTransport)
// --------------------------------------------------------------------------

func (c *clientConnector) GetName() string {
	return "stdio"
}

func (c *clientConnector) Connect(config common.ClientConfig) (transport.Conn, error) {
	endpoint := config.Transport.Endpoint

	if endpoint == "" {
		return NewFileConn(os.Stdin, os.Stdout), nil
	}

	parts := strings.Split(endpoint, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid stdio endpoint %q (expected R:W file descriptor pair)", endpoint)
	}

	readFD, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid read fd %q: %v", parts[0], err)
	}
	writeFD, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid write fd %q: %v", parts[1], err)
	}

	r := os.NewFile(uintptr(readFD), "nvrpc-read")
	w := os.NewFile(uintptr(writeFD), "nvrpc-write")
	if r == nil || w == nil {
		return nil, fmt.Errorf("invalid file descriptor pair %q", endpoint)
	}

	return NewFileConn(r, w), nil
}

// --------------------------------------------------------------------------
// File pair connection
// --------------------------------------------------------------------------

// fileConn joins a read file and a write file into a single duplex Conn
type fileConn struct {
	r *os.File
	w *os.File
}

// NewFileConn joins two file handles into a transport connection. The read
// handle must be pollable (a pipe, socketpair end, or character device) for
// read deadlines to work.
func NewFileConn(r, w *os.File) transport.Conn {
	return &fileConn{r: r, w: w}
}

func (c *fileConn) Read(p []byte) (int, error) {
	return c.r.Read(p)
}

func (c *fileConn) Write(p []byte) (int, error) {
	return c.w.Write(p)
}

func (c *fileConn) SetReadDeadline(t time.Time) error {
	return c.r.SetReadDeadline(t)
}

func (c *fileConn) Close() error {
	werr := c.w.Close()
	rerr := c.r.Close()
	if werr != nil {
		return werr
	}
	return rerr
}

// NewPipeConn creates two cross-connected in-process connections backed by
// OS pipes. Everything written to one side is read by the other. Useful for
// loopback peers in tests and examples.
func NewPipeConn() (transport.Conn, transport.Conn, error) {
	aRead, bWrite, err := os.Pipe()
	if err != nil {
		return nil, nil, err
	}
	bRead, aWrite, err := os.Pipe()
	if err != nil {
		aRead.Close()
		bWrite.Close()
		return nil, nil, err
	}
	return NewFileConn(aRead, aWrite), NewFileConn(bRead, bWrite), nil
}
