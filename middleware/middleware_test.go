package middleware_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/delaneyj/reactor/loop"
	"github.com/delaneyj/reactor/middleware"
	"github.com/delaneyj/reactor/reactor"
	"github.com/stretchr/testify/assert"
)

type Counter struct {
	Count int
}

type Increment struct{ reactor.Marker }

type Reset struct{ reactor.Marker }

func (c *Counter) Handle(e reactor.Event) {
	switch e.(type) {
	case Increment:
		c.Count++
	case Reset:
		c.Count = 0
	}
}

func newCounter(mws ...reactor.Middleware[Counter]) *reactor.Reactor[Counter] {
	return reactor.New(Counter{}, mws, reactor.WithExecutor(loop.NewQueue()))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "middleware_test.Increment", middleware.Kind(Increment{}))
	assert.Equal(t, "*middleware_test.Reset", middleware.Kind(&Reset{}))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := newCounter(middleware.NewLogger[Counter](log.New(&buf, "", 0)))

	r.Perform(Increment{})
	r.Perform(Reset{})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if assert.Len(t, lines, 2) {
		assert.True(t, strings.HasPrefix(lines[0], "middleware_test.Increment"))
		assert.Contains(t, lines[0], "{Count:1}")
		assert.True(t, strings.HasPrefix(lines[1], "middleware_test.Reset"))
		assert.Contains(t, lines[1], "{Count:0}")
	}
}

func TestStats(t *testing.T) {
	stats := middleware.NewStats[Counter]()
	r := newCounter(stats)

	for i := 0; i < 3; i++ {
		r.Perform(Increment{})
	}
	r.Perform(Reset{})

	assert.Equal(t, uint64(3), stats.Count(Increment{}))
	assert.Equal(t, uint64(1), stats.Count(Reset{}))
	assert.Equal(t, uint64(0), stats.Count(&Reset{}))
	assert.Equal(t, uint64(4), stats.Total())

	var buf bytes.Buffer
	stats.Report(&buf)
	out := buf.String()
	assert.Contains(t, out, "middleware_test.Increment")
	assert.Contains(t, out, "middleware_test.Reset")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "25.0%")
	assert.Less(t, strings.Index(out, "Increment"), strings.Index(out, "Reset"))
	assert.Contains(t, out, middleware.KindID("middleware_test.Increment"))
}

// should keep kinds apart by full name
func TestStatsDistinctKinds(t *testing.T) {
	stats := middleware.NewStats[Counter]()
	r := newCounter(stats)

	r.Perform(Reset{})
	r.Perform(&Reset{})
	r.Perform(&Reset{})

	assert.Equal(t, uint64(1), stats.Count(Reset{}))
	assert.Equal(t, uint64(2), stats.Count(&Reset{}))
	assert.NotEqual(t, middleware.KindID("middleware_test.Reset"), middleware.KindID("*middleware_test.Reset"))
	assert.Len(t, middleware.KindID("x"), 16)
}

func TestStatsEmptyReport(t *testing.T) {
	stats := middleware.NewStats[Counter]()
	var buf bytes.Buffer
	stats.Report(&buf)
	assert.NotEmpty(t, buf.String())
	assert.Equal(t, uint64(0), stats.Total())
}

func TestOnly(t *testing.T) {
	stats := middleware.NewStats[Counter]()
	r := newCounter(middleware.Only[Counter](stats, Reset{}))

	r.Perform(Increment{})
	r.Perform(Increment{})
	r.Perform(Reset{})

	assert.Equal(t, uint64(0), stats.Count(Increment{}))
	assert.Equal(t, uint64(1), stats.Count(Reset{}))
	assert.Equal(t, 0, r.State().Count)
}

func TestOnlyNoKinds(t *testing.T) {
	stats := middleware.NewStats[Counter]()
	r := newCounter(middleware.Only[Counter](stats))

	r.Perform(Increment{})
	assert.Equal(t, uint64(0), stats.Total())
}
