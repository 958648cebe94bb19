// Package base implements the transport functionality shared by all
// concrete transports (tcp, unix, stdio): buffered read/write halves around
// a connection and the bounded input-readiness probe of the reader loop.
//
// The probe is realized with a short read deadline and a one-byte peek
// rather than a platform-specific "bytes available" ioctl. Buffered data
// satisfies the peek immediately; an expired deadline means no input and is
// reported as such, not as an error.
package base
