// Package reactive provides a request-driven resource: a value that is
// (re)loaded asynchronously every time its request changes.
package reactive

import (
	"context"
	"sync"
)

// Loader produces the value for request. It must return promptly once ctx is
// cancelled; results of cancelled loads are discarded.
type Loader[R comparable, T any] func(ctx context.Context, request R) (T, error)

// Snapshot is a consistent view of a Resource at one point in time.
type Snapshot[R comparable, T any] struct {
	Status     Status
	Request    R
	HasRequest bool
	Value      T
	HasValue   bool
	Err        error
}

// IsLoading reports whether the snapshot was taken while a load was in flight.
func (s Snapshot[R, T]) IsLoading() bool {
	return s.Status.IsLoading()
}

// Resource runs its loader whenever the request changes by equality and keeps
// only the outcome of the latest load.
type Resource[R comparable, T any] struct {
	mu         sync.Mutex
	loader     Loader[R, T]
	baseCtx    context.Context
	baseCancel context.CancelFunc

	request    R
	hasRequest bool
	status     Status
	value      T
	hasValue   bool
	err        error

	generation uint64
	cancel     context.CancelFunc
	closed     bool
	inflight   sync.WaitGroup

	// seq orders snapshots; dispatch drops any snapshot older than the last one delivered.
	seq           uint64
	dispatchMu    sync.Mutex
	dispatchedSeq uint64
	listeners     map[uint64]func(Snapshot[R, T])
	nextListener  uint64
}

// New creates an idle Resource. Loads run under a context derived from ctx.
func New[R comparable, T any](ctx context.Context, loader Loader[R, T]) *Resource[R, T] {
	if ctx == nil {
		ctx = context.Background()
	}
	baseCtx, baseCancel := context.WithCancel(ctx)
	return &Resource[R, T]{
		loader:     loader,
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
		status:     StatusIdle,
		listeners:  make(map[uint64]func(Snapshot[R, T])),
	}
}

// SetRequest makes request the current one. An equal request is a no-op;
// otherwise the pending load is cancelled and a new one starts with the
// value and error cleared.
func (r *Resource[R, T]) SetRequest(request R) {
	r.mu.Lock()
	if r.closed || (r.hasRequest && r.request == request) {
		r.mu.Unlock()
		return
	}

	r.request = request
	r.hasRequest = true
	r.clearValueLocked()
	r.startLocked(StatusLoading)
	seq, snapshot := r.transitionLocked()
	r.mu.Unlock()

	r.dispatch(seq, snapshot)
}

// ClearRequest drops the current request, cancels any pending load and
// returns the resource to idle.
func (r *Resource[R, T]) ClearRequest() {
	r.mu.Lock()
	if r.closed || (!r.hasRequest && r.status == StatusIdle) {
		r.mu.Unlock()
		return
	}

	var zero R
	r.request = zero
	r.hasRequest = false
	r.stopLocked()
	r.clearValueLocked()
	r.status = StatusIdle
	seq, snapshot := r.transitionLocked()
	r.mu.Unlock()

	r.dispatch(seq, snapshot)
}

// Reload loads the current request again, superseding any pending load.
// It reports false when there is no request to reload.
func (r *Resource[R, T]) Reload() bool {
	r.mu.Lock()
	if r.closed || !r.hasRequest {
		r.mu.Unlock()
		return false
	}

	r.err = nil
	if r.hasValue {
		r.startLocked(StatusReloading)
	} else {
		r.startLocked(StatusLoading)
	}
	seq, snapshot := r.transitionLocked()
	r.mu.Unlock()

	r.dispatch(seq, snapshot)
	return true
}

// Snapshot returns the current state.
func (r *Resource[R, T]) Snapshot() Snapshot[R, T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// IsLoading reports whether a load is in flight.
func (r *Resource[R, T]) IsLoading() bool {
	return r.Snapshot().IsLoading()
}

// Error returns the error of the last completed load, if it failed.
func (r *Resource[R, T]) Error() error {
	return r.Snapshot().Err
}

// Value returns the value of the last successful load.
func (r *Resource[R, T]) Value() (T, bool) {
	snapshot := r.Snapshot()
	return snapshot.Value, snapshot.HasValue
}

// Subscribe registers fn to receive a snapshot after every state change.
// fn runs on the goroutine that caused the change and must not mutate the
// resource synchronously. The returned function removes the subscription.
func (r *Resource[R, T]) Subscribe(fn func(Snapshot[R, T])) func() {
	r.dispatchMu.Lock()
	id := r.nextListener
	r.nextListener++
	r.listeners[id] = fn
	r.dispatchMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.dispatchMu.Lock()
			delete(r.listeners, id)
			r.dispatchMu.Unlock()
		})
	}
}

// Close cancels any pending load, waits for it to return and rejects further
// requests.
func (r *Resource[R, T]) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.stopLocked()
	r.mu.Unlock()

	r.baseCancel()
	r.inflight.Wait()
}

func (r *Resource[R, T]) startLocked(status Status) {
	r.stopLocked()

	ctx, cancel := context.WithCancel(r.baseCtx)
	r.cancel = cancel
	r.status = status
	generation := r.generation
	request := r.request

	r.inflight.Add(1)
	go r.run(ctx, generation, request)
}

// stopLocked cancels the pending load and invalidates its result.
func (r *Resource[R, T]) stopLocked() {
	r.generation++
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *Resource[R, T]) clearValueLocked() {
	var zero T
	r.value = zero
	r.hasValue = false
	r.err = nil
}

func (r *Resource[R, T]) run(ctx context.Context, generation uint64, request R) {
	defer r.inflight.Done()

	value, err := r.loader(ctx, request)

	r.mu.Lock()
	// Superseded, or the base context is gone and the outcome is only a cancellation.
	if generation != r.generation || ctx.Err() != nil {
		r.mu.Unlock()
		return
	}
	r.cancel()
	r.cancel = nil

	if err != nil {
		r.clearValueLocked()
		r.err = err
		r.status = StatusError
	} else {
		r.value = value
		r.hasValue = true
		r.err = nil
		r.status = StatusResolved
	}
	seq, snapshot := r.transitionLocked()
	r.mu.Unlock()

	r.dispatch(seq, snapshot)
}

// transitionLocked numbers the state just produced so dispatch can order it.
func (r *Resource[R, T]) transitionLocked() (uint64, Snapshot[R, T]) {
	r.seq++
	return r.seq, r.snapshotLocked()
}

func (r *Resource[R, T]) snapshotLocked() Snapshot[R, T] {
	return Snapshot[R, T]{
		Status:     r.status,
		Request:    r.request,
		HasRequest: r.hasRequest,
		Value:      r.value,
		HasValue:   r.hasValue,
		Err:        r.err,
	}
}

func (r *Resource[R, T]) dispatch(seq uint64, snapshot Snapshot[R, T]) {
	r.dispatchMu.Lock()
	defer r.dispatchMu.Unlock()

	if seq <= r.dispatchedSeq {
		return
	}
	r.dispatchedSeq = seq

	for _, fn := range r.listeners {
		fn(snapshot)
	}
}
