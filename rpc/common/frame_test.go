package common

import (
	"errors"
	"reflect"
	"testing"
)

// TestFrameRoundTrip tests that frames survive the conversion to a wire
// value and back unchanged.
func TestFrameRoundTrip(t *testing.T) {
	frames := []*Frame{
		NewRequestFrame(1, "nvim_eval", []interface{}{"1+1"}),
		NewRequestFrame(42, "nvim_command", nil),
		NewResponseFrame(1, nil, int64(2)),
		NewResponseFrame(7, "boom", nil),
		NewNotificationFrame("redraw", []interface{}{}),
	}

	for i, f := range frames {
		got, err := FrameFromValue(interface{}(f.ToValue()))
		if err != nil {
			t.Fatalf("frame %d: unexpected error: %v", i, err)
		}
		if got.Kind != f.Kind || got.ID != f.ID || got.Method != f.Method {
			t.Errorf("frame %d: got %+v, want %+v", i, got, f)
		}
	}
}

// TestFrameFromValueMalformed tests that the shape checks reject every
// malformed value with ErrMalformedFrame.
func TestFrameFromValueMalformed(t *testing.T) {
	cases := map[string]interface{}{
		"not an array":        "hello",
		"nil":                 nil,
		"too short":           []interface{}{uint64(0), uint64(1)},
		"too long":            []interface{}{uint64(0), uint64(1), "m", []interface{}{}, nil},
		"unknown kind":        []interface{}{uint64(9), uint64(1), "m", []interface{}{}},
		"string kind":         []interface{}{"request", uint64(1), "m", []interface{}{}},
		"negative id":         []interface{}{uint64(0), int64(-1), "m", []interface{}{}},
		"non-string method":   []interface{}{uint64(0), uint64(1), uint64(5), []interface{}{}},
		"non-array params":    []interface{}{uint64(0), uint64(1), "m", "not-params"},
		"request of length 3": []interface{}{uint64(0), uint64(1), "m"},
		"notification len 4":  []interface{}{uint64(2), "m", []interface{}{}, nil},
	}

	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := FrameFromValue(v); !errors.Is(err, ErrMalformedFrame) {
				t.Errorf("expected ErrMalformedFrame, got %v", err)
			}
		})
	}
}

// TestResponseInvariant tests that exactly one of error/result is non-nil
// in a constructed response frame.
func TestResponseInvariant(t *testing.T) {
	// error wins over result
	f := NewResponseFrame(1, "err", "result")
	if f.Error == nil || f.Result != nil {
		t.Errorf("error response should discard the result: %+v", f)
	}

	f = NewResponseFrame(1, nil, "result")
	if f.Error != nil || f.Result == nil {
		t.Errorf("success response should carry only the result: %+v", f)
	}
}

// TestIntegerWidthNormalization tests that kind and id fields decode from
// every integer width a codec may produce.
func TestIntegerWidthNormalization(t *testing.T) {
	for _, id := range []interface{}{int64(3), uint64(3), int(3), uint(3), int32(3), uint32(3), float64(3)} {
		v := []interface{}{id, id, "method", []interface{}{}}
		f, err := FrameFromValue(interface{}(v))
		if err != nil {
			t.Fatalf("id type %T: %v", id, err)
		}
		if f.ID != 3 {
			t.Errorf("id type %T: got %d, want 3", id, f.ID)
		}
	}
}

// TestNilParamsEncodeAsEmptyArray tests the msgpack-RPC requirement that
// the params element is always an array.
func TestNilParamsEncodeAsEmptyArray(t *testing.T) {
	v := NewRequestFrame(1, "m", nil).ToValue()
	if !reflect.DeepEqual(v[3], []interface{}{}) {
		t.Errorf("expected empty params array, got %#v", v[3])
	}

	v = NewNotificationFrame("m", nil).ToValue()
	if !reflect.DeepEqual(v[2], []interface{}{}) {
		t.Errorf("expected empty params array, got %#v", v[2])
	}
}
