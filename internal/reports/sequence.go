package reports

import (
	"context"
	"sync"
	"sync/atomic"

	"wastetrack/pkg/types"
)

// Sequencer hands out increasing tickets. Only the holder of the most
// recent ticket may apply its result.
type Sequencer struct {
	latest atomic.Uint64
}

func (s *Sequencer) Next() uint64 {
	return s.latest.Add(1)
}

func (s *Sequencer) IsLatest(ticket uint64) bool {
	return s.latest.Load() == ticket
}

// ReportListState is a copy of a ReportList's current contents.
type ReportListState struct {
	District types.District
	Views    []*types.ReportView
	Err      error
	Loading  bool
}

// ReportList holds one surface's fetched reports. Overlapping loads resolve
// in request order: a response for anything but the latest request is
// discarded, as is anything arriving after Close.
type ReportList struct {
	query QueryService
	seq   Sequencer

	mu       sync.Mutex
	closed   bool
	inFlight int
	district types.District
	views    []*types.ReportView
	err      error
}

func NewReportList(query QueryService) *ReportList {
	return &ReportList{query: query}
}

// Load fetches pending reports for district. applied reports whether the
// result replaced the list's state; err is the fetch error either way.
func (l *ReportList) Load(ctx context.Context, district types.District) (applied bool, err error) {
	ticket := l.seq.Next()

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false, context.Canceled
	}
	l.inFlight++
	l.mu.Unlock()

	views, err := l.query.FetchPending(ctx, district)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.inFlight--
	if l.closed || !l.seq.IsLatest(ticket) {
		return false, err
	}

	l.district = district
	l.views = views
	l.err = err
	return true, err
}

func (l *ReportList) State() ReportListState {
	l.mu.Lock()
	defer l.mu.Unlock()

	views := make([]*types.ReportView, len(l.views))
	copy(views, l.views)

	return ReportListState{
		District: l.district,
		Views:    views,
		Err:      l.err,
		Loading:  l.inFlight > 0,
	}
}

// Close detaches the list from its surface. Later results are dropped.
func (l *ReportList) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}
