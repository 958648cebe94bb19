package common

import (
	"errors"
	"fmt"
)

// ErrMalformedFrame is returned when a decoded value does not have the
// shape of a msgpack-RPC frame (3- or 4-element array with a valid kind tag).
// Malformed frames are dropped by the reader loop, they never terminate it.
var ErrMalformedFrame = errors.New("malformed frame")

// --------------------------------------------------------------------------
// Frame Kind Definition
// --------------------------------------------------------------------------

// FrameKind is the msgpack-RPC message type tag, the first element of
// every frame array.
type FrameKind uint64

const (
	FrameRequest      FrameKind = 0 // [0, id, method, params]
	FrameResponse     FrameKind = 1 // [1, id, error, result]
	FrameNotification FrameKind = 2 // [2, method, params]
)

// String returns the string representation of a FrameKind.
func (k FrameKind) String() string {
	switch k {
	case FrameRequest:
		return "request"
	case FrameResponse:
		return "response"
	case FrameNotification:
		return "notification"
	default:
		return "unknown"
	}
}

// --------------------------------------------------------------------------
// Frame Structure
// --------------------------------------------------------------------------

// Frame represents a single msgpack-RPC message. Which fields are used
// depends on the kind:
//
//   - Request:      ID, Method, Params
//   - Response:     ID, Error, Result (exactly one of the two is non-nil)
//   - Notification: Method, Params
type Frame struct {
	Kind   FrameKind
	ID     uint64
	Method string
	Params []interface{}
	Error  interface{}
	Result interface{}
}

// --------------------------------------------------------------------------
// Frame Factory Functions
// --------------------------------------------------------------------------

// NewRequestFrame creates a new request frame for the given id and method.
func NewRequestFrame(id uint64, method string, params []interface{}) *Frame {
	return &Frame{
		Kind:   FrameRequest,
		ID:     id,
		Method: method,
		Params: params,
	}
}

// NewResponseFrame creates a new response frame. If err is non-nil it is
// placed in the error slot and any result is discarded, so the response
// invariant (exactly one of error/result non-nil) always holds.
func NewResponseFrame(id uint64, err interface{}, result interface{}) *Frame {
	f := &Frame{
		Kind: FrameResponse,
		ID:   id,
	}
	if err != nil {
		f.Error = err
	} else {
		f.Result = result
	}
	return f
}

// NewNotificationFrame creates a new notification frame.
func NewNotificationFrame(method string, params []interface{}) *Frame {
	return &Frame{
		Kind:   FrameNotification,
		Method: method,
		Params: params,
	}
}

// --------------------------------------------------------------------------
// Wire Conversion
// --------------------------------------------------------------------------

// ToValue converts the frame to the array value written to the wire.
// A nil params slice is written as an empty array since msgpack-RPC
// requires the params element to be an array.
func (f *Frame) ToValue() []interface{} {
	params := f.Params
	if params == nil {
		params = []interface{}{}
	}

	switch f.Kind {
	case FrameRequest:
		return []interface{}{uint64(FrameRequest), f.ID, f.Method, params}
	case FrameResponse:
		return []interface{}{uint64(FrameResponse), f.ID, f.Error, f.Result}
	default:
		return []interface{}{uint64(FrameNotification), f.Method, params}
	}
}

// FrameFromValue validates a decoded value against the msgpack-RPC frame
// shape and converts it to a Frame. A value that is not an array of length
// 3 or 4, or whose elements have the wrong types for its kind tag, yields
// ErrMalformedFrame.
func FrameFromValue(v interface{}) (*Frame, error) {
	arr, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: not an array (%T)", ErrMalformedFrame, v)
	}
	if len(arr) != 3 && len(arr) != 4 {
		return nil, fmt.Errorf("%w: array of length %d", ErrMalformedFrame, len(arr))
	}

	kind, ok := toUint(arr[0])
	if !ok {
		return nil, fmt.Errorf("%w: non-integer kind tag (%T)", ErrMalformedFrame, arr[0])
	}

	switch FrameKind(kind) {
	case FrameRequest:
		if len(arr) != 4 {
			return nil, fmt.Errorf("%w: request with %d elements", ErrMalformedFrame, len(arr))
		}
		id, ok := toUint(arr[1])
		if !ok {
			return nil, fmt.Errorf("%w: non-integer request id (%T)", ErrMalformedFrame, arr[1])
		}
		method, ok := toString(arr[2])
		if !ok {
			return nil, fmt.Errorf("%w: non-string method (%T)", ErrMalformedFrame, arr[2])
		}
		params, ok := toArray(arr[3])
		if !ok {
			return nil, fmt.Errorf("%w: non-array params (%T)", ErrMalformedFrame, arr[3])
		}
		return NewRequestFrame(id, method, params), nil

	case FrameResponse:
		if len(arr) != 4 {
			return nil, fmt.Errorf("%w: response with %d elements", ErrMalformedFrame, len(arr))
		}
		id, ok := toUint(arr[1])
		if !ok {
			return nil, fmt.Errorf("%w: non-integer response id (%T)", ErrMalformedFrame, arr[1])
		}
		return &Frame{
			Kind:   FrameResponse,
			ID:     id,
			Error:  arr[2],
			Result: arr[3],
		}, nil

	case FrameNotification:
		if len(arr) != 3 {
			return nil, fmt.Errorf("%w: notification with %d elements", ErrMalformedFrame, len(arr))
		}
		method, ok := toString(arr[1])
		if !ok {
			return nil, fmt.Errorf("%w: non-string method (%T)", ErrMalformedFrame, arr[1])
		}
		params, ok := toArray(arr[2])
		if !ok {
			return nil, fmt.Errorf("%w: non-array params (%T)", ErrMalformedFrame, arr[2])
		}
		return NewNotificationFrame(method, params), nil

	default:
		return nil, fmt.Errorf("%w: unknown kind tag %d", ErrMalformedFrame, kind)
	}
}

// --------------------------------------------------------------------------
// Decode Helpers
// --------------------------------------------------------------------------

// toUint normalizes the integer widths different codecs produce.
// Negative values are rejected.
func toUint(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case uint64:
		return n, true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case uint:
		return uint64(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case int32:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case float64:
		// JSON codecs decode all numbers as float64
		if n < 0 || n != float64(uint64(n)) {
			return 0, false
		}
		return uint64(n), true
	default:
		return 0, false
	}
}

// toString accepts both string and raw-bytes encodings of the method name.
func toString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	default:
		return "", false
	}
}

func toArray(v interface{}) ([]interface{}, bool) {
	if v == nil {
		return []interface{}{}, true
	}
	arr, ok := v.([]interface{})
	return arr, ok
}
