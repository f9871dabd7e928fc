package core

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"
)

// transient is implemented by transport errors that know whether a retry
// could succeed.
type transient interface {
	Transient() bool
}

// IsTransient reports whether err is a timeout or temporary network failure.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var t transient
	if errors.As(err, &t) {
		return t.Transient()
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsTemporary || dnsErr.IsTimeout
	}

	// The only peer is the Bot API, so a socket-level failure, permanent or
	// not, is an outage rather than a bad request. Only the log level
	// depends on it.
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
