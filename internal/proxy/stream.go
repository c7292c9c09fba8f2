package proxy

import (
	"io"
	"sync"
	"unicode/utf8"

	"github.com/ppiankov/chatwarden/internal/extract"
	"github.com/ppiankov/chatwarden/internal/rules"
)

const (
	// windowOverlap re-scans the end of already-classified text so a phrase
	// split across frames is still seen whole.
	windowOverlap = 256
	// snapshotWindow bounds the text classified after a snapshot frame,
	// which may rewrite anything seen so far.
	snapshotWindow = 4096
)

// streamGuard passes a streamed response through while classifying each
// batch of completed frames. A Block replaces the rest of the stream with
// one error event.
type streamGuard struct {
	body    io.ReadCloser
	p       *Pipeline
	st      *extract.Stream
	kind    extract.StreamKind
	host    string
	profile string

	seen      int
	snapshots int
	worst     *Verdict
	tail      []byte
	finished  bool
	once      sync.Once
}

func newStreamGuard(body io.ReadCloser, p *Pipeline, contentType, host, profile string) (*streamGuard, bool) {
	st, ok := extract.NewStream(contentType)
	if !ok {
		return nil, false
	}
	kind, _ := extract.StreamKindFor(contentType)
	return &streamGuard{body: body, p: p, st: st, kind: kind, host: host, profile: profile}, true
}

func (g *streamGuard) Read(buf []byte) (int, error) {
	if len(g.tail) > 0 {
		n := copy(buf, g.tail)
		g.tail = g.tail[n:]
		return n, nil
	}
	if g.finished {
		return 0, io.EOF
	}

	n, err := g.body.Read(buf)
	if n > 0 && g.st.Write(buf[:n]) > 0 {
		if v := g.check(); v.Blocked() {
			return g.terminate(buf, v)
		}
	}
	if err == io.EOF {
		before := g.st.Text()
		g.st.Close()
		if g.st.Text() != before {
			if v := g.check(); v.Blocked() {
				return g.terminate(buf, v)
			}
		}
		g.finished = true
	}
	return n, err
}

// check classifies the text recovered since the last check.
func (g *streamGuard) check() Verdict {
	cur := g.st.Text()
	start := g.seen - windowOverlap
	if n := g.st.Snapshots(); n != g.snapshots || len(cur) < g.seen {
		g.snapshots = n
		start = len(cur) - snapshotWindow
	}
	if start < 0 {
		start = 0
	}
	for start < len(cur) && !utf8.RuneStart(cur[start]) {
		start++
	}
	g.seen = len(cur)

	v := g.p.Classify(cur[start:], g.host, g.profile)
	if g.worst == nil || v.Decision.Action > g.worst.Decision.Action ||
		(len(g.worst.Result.Matches) == 0 && len(v.Result.Matches) > 0) {
		g.worst = &v
	}
	return v
}

// terminate drops the current chunk and queues the error event.
func (g *streamGuard) terminate(buf []byte, v Verdict) (int, error) {
	g.p.logger().Info("stream blocked", "host", g.host, "rule", v.Decision.Source)
	g.worst = &v
	g.finished = true
	_ = g.body.Close()
	g.tail = streamErrorEvent(g.kind, v)
	n := copy(buf, g.tail)
	g.tail = g.tail[n:]
	return n, nil
}

func (g *streamGuard) Close() error {
	err := g.body.Close()
	g.once.Do(func() {
		if g.worst != nil && (g.worst.Decision.Action != rules.Allow || len(g.worst.Result.Matches) > 0) {
			g.p.Record(*g.worst)
		}
	})
	return err
}
