package base

import (
	"bufio"
	"errors"
	"net"
	"os"
	"time"

	"github.com/Dario48true/nvrpc/rpc/common"
	"github.com/Dario48true/nvrpc/rpc/transport"
)

// Duplex wraps a connected stream in independently buffered read and write
// halves. The read half belongs to the reader loop, the write half to the
// writer loop; Duplex itself adds no locking.
type Duplex struct {
	conn transport.Conn
	r    *bufio.Reader
	w    *bufio.Writer
}

// NewDuplex creates a buffered duplex wrapper with the buffer sizes from
// the socket configuration.
func NewDuplex(conn transport.Conn, conf common.SocketConf) *Duplex {
	readSize := conf.ReadBufferSize
	if readSize <= 0 {
		readSize = common.DefaultBufferSize
	}
	writeSize := conf.WriteBufferSize
	if writeSize <= 0 {
		writeSize = common.DefaultBufferSize
	}

	return &Duplex{
		conn: conn,
		r:    bufio.NewReaderSize(conn, readSize),
		w:    bufio.NewWriterSize(conn, writeSize),
	}
}

// Reader returns the buffered read half. Only the reader loop may use it.
func (d *Duplex) Reader() *bufio.Reader {
	return d.r
}

// Writer returns the buffered write half. Only the writer loop may use it.
func (d *Duplex) Writer() *bufio.Writer {
	return d.w
}

// Poll reports whether at least one byte of input is available, waiting at
// most the given timeout. On a hit the read deadline is cleared so the
// following decode can block until a complete value has arrived.
//
// A timeout is not an error: it is the reader loop's idle park and its
// cooperation point for observing a stop request.
func (d *Duplex) Poll(timeout time.Duration) (bool, error) {
	if d.r.Buffered() > 0 {
		return true, nil
	}

	if err := d.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return false, err
	}

	_, err := d.r.Peek(1)
	if err == nil {
		return true, d.conn.SetReadDeadline(time.Time{})
	}
	if isTimeout(err) {
		return false, nil
	}
	return false, err
}

// Flush flushes the write half down to the transport.
func (d *Duplex) Flush() error {
	return d.w.Flush()
}

// Close closes the underlying connection. Any goroutine blocked in a read
// or write on the connection is unblocked with an error.
func (d *Duplex) Close() error {
	return d.conn.Close()
}

// isTimeout reports whether err is a read-deadline expiry.
func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
