package client

import (
	"github.com/Dario48true/nvrpc/rpc/common"
)

// handleRequest runs on a worker-pool goroutine. It invokes the
// call-handler, builds the response frame from the outcome and enqueues it.
func (c *Client) handleRequest(h CallHandler, req *common.Frame) {
	metricCallsDispatched.Inc()

	result, err := h(req.Params)

	var errValue interface{}
	if err != nil {
		errValue = err.Error()
	}

	// a response that cannot be enqueued anymore (client stopped while the
	// handler ran) is dropped rather than failing the dispatch task
	if !c.outbound.Push(common.NewResponseFrame(req.ID, errValue, result)) {
		metricDroppedShutdown.Inc()
		Logger.Debugf("response for request %d dropped: client stopped", req.ID)
	}
}

// handleNotification runs on a worker-pool goroutine. Notifications have
// no reply path; the handler's return is not consumed.
func (c *Client) handleNotification(h NotifyHandler, f *common.Frame) {
	metricNotifiesDispatched.Inc()
	h(f.Params)
}
