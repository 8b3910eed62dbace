package middleware

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/reactor/reactor"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

type kindStats struct {
	name  string
	count uint64
	last  time.Time
}

// Stats counts performed events per kind. It is safe to read from other
// goroutines while the reactor keeps running.
type Stats[S any] struct {
	mu    sync.Mutex
	kinds map[string]*kindStats
	order []string
	total uint64
	now   func() time.Time
}

// NewStats returns an empty Stats.
func NewStats[S any]() *Stats[S] {
	return &Stats[S]{
		kinds: map[string]*kindStats{},
		now:   time.Now,
	}
}

func (s *Stats[S]) Handle(e reactor.Event, _ S) {
	name := Kind(e)

	s.mu.Lock()
	defer s.mu.Unlock()

	ks, ok := s.kinds[name]
	if !ok {
		ks = &kindStats{name: name}
		s.kinds[name] = ks
		s.order = append(s.order, name)
	}
	ks.count++
	ks.last = s.now()
	s.total++
}

// Count returns how many events of e's kind were seen.
func (s *Stats[S]) Count(e reactor.Event) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ks, ok := s.kinds[Kind(e)]; ok {
		return ks.count
	}
	return 0
}

// Total returns how many events were seen.
func (s *Stats[S]) Total() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// KindID is a short stable id for an event kind name, used in reports.
func KindID(name string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(name))
}

// Report writes a table of event kinds in first-seen order.
func (s *Stats[S]) Report(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"id", "event", "count", "share", "last seen"})
	for _, name := range s.order {
		ks := s.kinds[name]
		share := float64(ks.count) / float64(s.total) * 100
		table.Append([]string{
			KindID(ks.name),
			ks.name,
			humanize.Comma(int64(ks.count)),
			fmt.Sprintf("%.1f%%", share),
			humanize.Time(ks.last),
		})
	}
	table.SetFooter([]string{"", "total", humanize.Comma(int64(s.total)), "", ""})
	table.Render()
}
