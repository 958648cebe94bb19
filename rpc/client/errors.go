package client

import (
	"errors"
	"fmt"
)

var (
	// ErrClientClosed is returned by Call and Notify once the client has
	// been stopped or closed.
	ErrClientClosed = errors.New("rpc client is closed")

	// ErrDuplicateRequestID signals a pending-call table collision. The ID
	// allocator makes this unreachable; seeing it means the correlation
	// invariant is broken.
	ErrDuplicateRequestID = errors.New("duplicate request id in pending-call table")

	// ErrResponseMissing is returned when a call was woken but its response
	// is not in the inbound buffer. Unreachable under correct signaling.
	ErrResponseMissing = errors.New("response signaled but not buffered")
)

// RemoteError carries the error value of a response frame. The value is
// whatever the peer put in the error slot, commonly a string or a
// [type, message] array.
type RemoteError struct {
	Value interface{}
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error: %v", e.Value)
}
