package client

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// CallHandler handles an inbound request and returns a result or an error.
// A non-nil error is sent back in the error slot of the response frame.
type CallHandler func(params []interface{}) (interface{}, error)

// NotifyHandler handles an inbound notification. It has no reply path.
type NotifyHandler func(params []interface{})

// methodBinding holds the handler registered under a method name. Exactly
// one of the two fields is set.
type methodBinding struct {
	call   CallHandler
	notify NotifyHandler
}

// methodRegistry maps method names to handlers. Registration typically
// happens before Start but is safe at any time; re-registration overwrites.
type methodRegistry struct {
	methods *xsync.MapOf[string, methodBinding]
}

func newMethodRegistry() *methodRegistry {
	return &methodRegistry{
		methods: xsync.NewMapOf[string, methodBinding](),
	}
}

func (r *methodRegistry) registerCall(name string, h CallHandler) {
	r.methods.Store(name, methodBinding{call: h})
}

func (r *methodRegistry) registerNotify(name string, h NotifyHandler) {
	r.methods.Store(name, methodBinding{notify: h})
}

// lookupCall returns the call-handler bound to name. A name bound to a
// notify-handler is reported as unbound: the frame is unroutable.
func (r *methodRegistry) lookupCall(name string) (CallHandler, bool) {
	b, ok := r.methods.Load(name)
	if !ok || b.call == nil {
		return nil, false
	}
	return b.call, true
}

// lookupNotify is the counterpart for notification frames.
func (r *methodRegistry) lookupNotify(name string) (NotifyHandler, bool) {
	b, ok := r.methods.Load(name)
	if !ok || b.notify == nil {
		return nil, false
	}
	return b.notify, true
}
