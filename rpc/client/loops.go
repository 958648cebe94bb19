package client

import (
	"time"

	"github.com/Dario48true/nvrpc/rpc/common"
)

// --------------------------------------------------------------------------
// Reader Loop
// --------------------------------------------------------------------------

// readerLoop owns the read half of the transport. Each iteration it probes
// for input with a bounded wait (its idle park and stop-observation point),
// decodes exactly one value, validates the frame shape and routes it.
//
// A decode error is fatal to this loop only: the stream is presumed
// desynchronized, inbound traffic stops, outbound keeps working.
func (c *Client) readerLoop() {
	defer Logger.Debugf("reader loop stopped")

	reader := c.codec.NewReader(c.duplex.Reader())
	pollInterval := time.Duration(c.config.PollIntervalMs) * time.Millisecond

	for c.alive.Load() {
		ready, err := c.duplex.Poll(pollInterval)
		if err != nil {
			if c.alive.Load() {
				Logger.Errorf("transport failed, stopping reader: %v", err)
			}
			return
		}
		if !ready {
			continue
		}

		v, err := reader.ReadValue()
		if err != nil {
			if c.alive.Load() {
				Logger.Errorf("decode failed, stopping reader: %v", err)
			}
			return
		}
		metricFramesRead.Inc()

		f, err := common.FrameFromValue(v)
		if err != nil {
			// malformed frames are dropped, never fatal
			metricDroppedMalformed.Inc()
			Logger.Warningf("dropping inbound frame: %v", err)
			continue
		}

		c.route(f)
	}
}

// route dispatches one well-formed inbound frame by kind.
func (c *Client) route(f *common.Frame) {
	switch f.Kind {
	case common.FrameResponse:
		// buffer first, then wake: the caller must find its response
		// the moment it observes the signal
		c.respBuf.push(f)
		c.pending.signal(f.ID)

	case common.FrameRequest:
		h, ok := c.registry.lookupCall(f.Method)
		if !ok {
			// no error response is sent back for unroutable requests
			metricDroppedUnroutable.Inc()
			Logger.Warningf("dropping request %d for unbound method %q", f.ID, f.Method)
			return
		}
		c.workers.Submit(func() { c.handleRequest(h, f) })

	case common.FrameNotification:
		h, ok := c.registry.lookupNotify(f.Method)
		if !ok {
			metricDroppedUnroutable.Inc()
			Logger.Warningf("dropping notification for unbound method %q", f.Method)
			return
		}
		c.workers.Submit(func() { c.handleNotification(h, f) })
	}
}

// --------------------------------------------------------------------------
// Writer Loop
// --------------------------------------------------------------------------

// writerLoop owns the write half of the transport. It parks on the
// outbound queue's channel, then encodes and flushes one frame per wake.
// Closing the queue (Stop) is its shutdown signal.
func (c *Client) writerLoop() {
	defer Logger.Debugf("writer loop stopped")

	writer := c.codec.NewWriter(c.duplex.Writer())

	for f := range c.outbound.Recv() {
		if !c.alive.Load() {
			metricDroppedShutdown.Inc()
			continue
		}

		if err := writer.WriteValue(f.ToValue()); err != nil {
			c.logWriteError(f, err)
			return
		}
		if err := c.duplex.Flush(); err != nil {
			c.logWriteError(f, err)
			return
		}
		metricFramesWritten.Inc()
	}
}

func (c *Client) logWriteError(f *common.Frame, err error) {
	if c.alive.Load() {
		Logger.Errorf("write of %s frame failed, stopping writer: %v", f.Kind, err)
	}
}
