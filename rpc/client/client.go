package client

import (
	"fmt"
	"sync/atomic"

	"github.com/lni/dragonboat/v4/logger"

	"github.com/Dario48true/nvrpc/lib/pool"
	"github.com/Dario48true/nvrpc/lib/queue"
	"github.com/Dario48true/nvrpc/rpc/codec"
	"github.com/Dario48true/nvrpc/rpc/common"
	"github.com/Dario48true/nvrpc/rpc/transport"
	"github.com/Dario48true/nvrpc/rpc/transport/base"
)

var Logger = logger.GetLogger("rpc/client")

// Client is a bidirectional msgpack-RPC endpoint over a byte-stream
// transport. It issues outbound calls and notifications, and dispatches
// inbound requests and notifications to registered handlers on a worker
// pool. A background reader/writer loop pair owns the transport.
//
// All methods are safe for concurrent use.
type Client struct {
	config common.ClientConfig
	codec  codec.IFrameCodec
	duplex *base.Duplex

	registry *methodRegistry
	pending  *pendingTable
	respBuf  *responseBuffer
	outbound *queue.MPSC[*common.Frame]
	workers  *pool.Pool

	nextRequestID atomic.Uint64
	alive         atomic.Bool
	started       atomic.Bool
	closed        atomic.Bool
}

// NewClient connects the given transport and creates a client on the
// resulting connection.
//
// Usage:
//
//	c, err := client.NewClient(
//		config,
//		unix.NewUnixClientTransport(),
//		codec.NewMsgpackCodec(),
//	)
//	if err != nil { ... }
//	c.RegisterNotifyMethod("redraw", onRedraw)
//	c.Start()
//	defer c.Close()
//
//	result, err := c.Call("nvim_eval", []interface{}{"1+1"})
func NewClient(
	config common.ClientConfig,
	t transport.IRPCClientTransport,
	c codec.IFrameCodec,
) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	conn, err := t.Connect(config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect %s transport: %w", t.GetName(), err)
	}

	Logger.Infof("connected to %s via %s transport using %s codec",
		config.Transport.Endpoint, t.GetName(), c.GetName())

	return NewClientFromConn(config, conn, c)
}

// NewClientFromConn creates a client on an already-connected stream. The
// client takes ownership of the connection and closes it on Close.
func NewClientFromConn(
	config common.ClientConfig,
	conn transport.Conn,
	c codec.IFrameCodec,
) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config:   config,
		codec:    c,
		duplex:   base.NewDuplex(conn, config.Transport.SocketConf),
		registry: newMethodRegistry(),
		pending:  newPendingTable(),
		respBuf:  newResponseBuffer(),
		outbound: queue.New[*common.Frame](),
		workers:  pool.New(config.MaxWorkers),
	}, nil
}

// --------------------------------------------------------------------------
// Handler Registration
// --------------------------------------------------------------------------

// RegisterCallMethod binds a call-handler to a method name. An existing
// binding for the name is replaced.
func (c *Client) RegisterCallMethod(name string, h CallHandler) {
	c.registry.registerCall(name, h)
}

// RegisterNotifyMethod binds a notify-handler to a method name. An existing
// binding for the name is replaced.
func (c *Client) RegisterNotifyMethod(name string, h NotifyHandler) {
	c.registry.registerNotify(name, h)
}

// --------------------------------------------------------------------------
// Lifecycle
// --------------------------------------------------------------------------

// Start spawns the reader and writer loops on the worker pool. Calling
// Start more than once is a no-op.
func (c *Client) Start() {
	if !c.started.CompareAndSwap(false, true) {
		return
	}
	c.alive.Store(true)

	c.workers.Go(c.readerLoop)
	c.workers.Go(c.writerLoop)

	Logger.Debugf("client started (poll interval %dms, %d workers)",
		c.config.PollIntervalMs, c.config.MaxWorkers)
}

// Stop clears the alive flag and wakes the writer so both loops wind down.
// It does not wait for them and does not unblock callers already parked in
// Call; use Close for a full shutdown.
func (c *Client) Stop() {
	c.alive.Store(false)
	// closing the queue is the writer's wake-up; the reader notices the
	// flag on its next poll cycle
	c.outbound.Close()
}

// Close stops the loops, closes the transport, waits for all loop and
// dispatch tasks to finish and drains everything still queued or buffered.
// Calling Close again returns nil immediately.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}

	c.Stop()

	// unblocks a reader parked in a read and a writer stuck flushing
	err := c.duplex.Close()

	c.workers.Wait()

	// shutdown accounting: everything never sent, never claimed or never
	// answered is surfaced here
	if dropped := c.outbound.Drain(); len(dropped) > 0 {
		metricDroppedShutdown.Add(len(dropped))
		Logger.Infof("dropped %d unsent outbound frames at shutdown", len(dropped))
	}
	if buffered := c.respBuf.drain(); len(buffered) > 0 {
		Logger.Infof("discarded %d unclaimed buffered responses at shutdown", len(buffered))
	}
	if waiting := c.pending.size(); waiting > 0 {
		Logger.Warningf("%d calls still awaiting a response at shutdown", waiting)
	}

	return err
}

// --------------------------------------------------------------------------
// Outbound Operations
// --------------------------------------------------------------------------

// Call sends a request and blocks until the correlated response arrives.
// On success it returns the response's result value; a peer-reported
// failure is returned as *RemoteError.
//
// There is no timeout: if the peer never answers, Call blocks forever.
// Stop and Close do not unblock waiting callers.
func (c *Client) Call(method string, params []interface{}) (interface{}, error) {
	if !c.alive.Load() {
		return nil, ErrClientClosed
	}

	id := c.nextRequestID.Add(1)

	w, err := c.pending.register(id)
	if err != nil {
		return nil, err
	}

	if !c.outbound.Push(common.NewRequestFrame(id, method, params)) {
		c.pending.remove(id)
		return nil, ErrClientClosed
	}

	pendingCalls.Add(1)
	w.wait()
	pendingCalls.Add(-1)

	c.pending.remove(id)

	resp, ok := c.respBuf.takeMatching(id)
	if !ok {
		return nil, fmt.Errorf("%w (request %d)", ErrResponseMissing, id)
	}

	if resp.Error != nil {
		return nil, &RemoteError{Value: resp.Error}
	}
	return resp.Result, nil
}

// Notify sends a notification and returns immediately. No response is
// expected and no pending-call entry is created.
func (c *Client) Notify(method string, params []interface{}) error {
	if !c.alive.Load() {
		return ErrClientClosed
	}
	if !c.outbound.Push(common.NewNotificationFrame(method, params)) {
		return ErrClientClosed
	}
	return nil
}
