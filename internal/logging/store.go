package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gymms/portal/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	persistBuffer  = 256
	persistTimeout = 5 * time.Second
)

// recordInserter is the slice of *mongo.Collection the sink needs.
type recordInserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// logSink owns the buffered channel and its shutdown state. Handlers derived
// via WithAttrs/WithGroup share one sink, so closing is guarded in a single
// place: a record emitted while Close is in flight is dropped, never sent on
// a closed channel.
type logSink struct {
	mu      sync.Mutex
	closed  bool
	entries chan models.LogEntry
	done    chan struct{}
}

func newLogSink(inserter recordInserter) *logSink {
	s := &logSink{
		entries: make(chan models.LogEntry, persistBuffer),
		done:    make(chan struct{}),
	}
	go s.drain(inserter)
	return s
}

func (s *logSink) drain(inserter recordInserter) {
	defer close(s.done)
	for entry := range s.entries {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		_, _ = inserter.InsertOne(ctx, entry)
		cancel()
	}
}

func (s *logSink) enqueue(entry models.LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.entries <- entry:
	default:
		// Buffer full; drop rather than block the caller.
	}
}

func (s *logSink) close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	close(s.entries)
	s.mu.Unlock()
	<-s.done
}

// StoreHandler forwards records to an inner handler and persists them to the
// logs collection in the background. Persistence is best-effort: a full
// buffer drops the record and insert failures are swallowed, so logging can
// never take the portal down.
type StoreHandler struct {
	inner slog.Handler
	sink  *logSink
}

// NewStoreHandler wraps inner with collection persistence.
func NewStoreHandler(inner slog.Handler, collection *mongo.Collection) *StoreHandler {
	return newStoreHandler(inner, collection)
}

func newStoreHandler(inner slog.Handler, inserter recordInserter) *StoreHandler {
	return &StoreHandler{inner: inner, sink: newLogSink(inserter)}
}

// Close stops persistence after flushing buffered records. Records logged
// concurrently with Close are dropped.
func (h *StoreHandler) Close() {
	h.sink.close()
}

func (h *StoreHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *StoreHandler) Handle(ctx context.Context, r slog.Record) error {
	err := h.inner.Handle(ctx, r)

	meta := make(map[string]any, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		meta[a.Key] = a.Value.String()
		return true
	})

	h.sink.enqueue(models.LogEntry{
		Level:     r.Level.String(),
		Message:   r.Message,
		Meta:      meta,
		CreatedAt: r.Time,
	})
	return err
}

func (h *StoreHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StoreHandler{inner: h.inner.WithAttrs(attrs), sink: h.sink}
}

func (h *StoreHandler) WithGroup(name string) slog.Handler {
	return &StoreHandler{inner: h.inner.WithGroup(name), sink: h.sink}
}
