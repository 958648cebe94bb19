package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/Dario48true/nvrpc/rpc/common"
)

// benchFrames returns a request, a response and a notification of
// realistic editor-automation sizes.
func benchFrames() []*common.Frame {
	lines := make([]interface{}, 50)
	for i := range lines {
		lines[i] = "some buffer line with a fairly typical length for source code"
	}

	return []*common.Frame{
		common.NewRequestFrame(99, "nvim_buf_set_lines", []interface{}{
			uint64(1), uint64(0), int64(-1), false, lines,
		}),
		common.NewResponseFrame(99, nil, lines),
		common.NewNotificationFrame("nvim_buf_lines_event", []interface{}{
			uint64(1), uint64(12), uint64(0), int64(-1), lines,
		}),
	}
}

// BenchmarkEncode measures encoding throughput for each codec.
func BenchmarkEncode(b *testing.B) {
	frames := benchFrames()

	for name, factory := range testCodecs {
		b.Run(name, func(b *testing.B) {
			w := factory().NewWriter(io.Discard)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for _, f := range frames {
					if err := w.WriteValue(f.ToValue()); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

// BenchmarkRoundTrip measures a full encode/decode cycle for each codec.
func BenchmarkRoundTrip(b *testing.B) {
	frames := benchFrames()

	for name, factory := range testCodecs {
		b.Run(name, func(b *testing.B) {
			c := factory()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var buf bytes.Buffer
				w := c.NewWriter(&buf)
				r := c.NewReader(&buf)
				for _, f := range frames {
					if err := w.WriteValue(f.ToValue()); err != nil {
						b.Fatal(err)
					}
				}
				for range frames {
					if _, err := r.ReadValue(); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}
