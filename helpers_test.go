package nestedfade

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// byIdentity makes cmp compare engine objects by pointer instead of walking
// their unexported state.
var byIdentity = cmp.Options{
	cmp.Comparer(func(a, b *FadeNode) bool { return a == b }),
	cmp.Comparer(func(a, b *FadeGroup) bool { return a == b }),
	cmp.Comparer(func(a, b *Node) bool { return a == b }),
}

// recorder is a FadeNode that logs the notifications it receives.
type recorder struct {
	FadeNode
	name string
	log  *[]string
}

func newRecorder(name string, log *[]string) *recorder {
	r := &recorder{name: name, log: log}
	r.init(r, nopSink{}, "")
	return r
}

func (r *recorder) record(ev string) { *r.log = append(*r.log, ev+" "+r.name) }

func (r *recorder) enable()          { r.record("enable"); r.FadeNode.enable() }
func (r *recorder) disable()         { r.record("disable"); r.FadeNode.disable() }
func (r *recorder) parentChanged()   { r.record("parentChanged"); r.FadeNode.parentChanged() }
func (r *recorder) childrenChanged() { r.record("childrenChanged"); r.FadeNode.childrenChanged() }
func (r *recorder) destroy()         { r.record("destroy"); r.FadeNode.destroy() }

// countingSink records every value written to it.
type countingSink struct {
	resolved int
	writes   []float64
}

func (s *countingSink) ResolveReferences(*Node) { s.resolved++ }
func (s *countingSink) ApplyAlpha(total float64) {
	s.writes = append(s.writes, total)
}

func (s *countingSink) last() float64 {
	if len(s.writes) == 0 {
		return math.NaN()
	}
	return s.writes[len(s.writes)-1]
}

func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, got none", what)
		}
	}()
	fn()
}

func assertAlpha(t *testing.T, what string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

// captureLog redirects the package logger into a buffer until the test ends.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

// checkSubscriptions fails the test if any subscription list is out of sync
// with what the tree resolves to.
func checkSubscriptions(t *testing.T, root *Node) {
	t.Helper()
	if err := debugCheckSubscriptions(root); err != nil {
		t.Error(err)
	}
}
