package proxy

import (
	"net"
	"sync"
	"sync/atomic"
)

// connListener hands one already-accepted connection to an http.Server.
// Accept blocks after the first call until that connection is closed, so
// Serve returns exactly when the client is done.
type connListener struct {
	conn   *notifyConn
	served atomic.Bool
	done   chan struct{}
	once   sync.Once
}

func newConnListener(c net.Conn) *connListener {
	l := &connListener{done: make(chan struct{})}
	l.conn = &notifyConn{Conn: c, onClose: l.stop}
	return l
}

func (l *connListener) stop() {
	l.once.Do(func() { close(l.done) })
}

func (l *connListener) Accept() (net.Conn, error) {
	if l.served.CompareAndSwap(false, true) {
		return l.conn, nil
	}
	<-l.done
	return nil, net.ErrClosed
}

func (l *connListener) Close() error {
	l.stop()
	return nil
}

func (l *connListener) Addr() net.Addr { return l.conn.LocalAddr() }

type notifyConn struct {
	net.Conn
	once    sync.Once
	onClose func()
}

func (c *notifyConn) Close() error {
	err := c.Conn.Close()
	c.once.Do(c.onClose)
	return err
}
