// SPDX-License-Identifier: MIT

// Package sparse - handle registry and lifecycle.
//
// The registry maps handle ids to matrices. A destroyed handle keeps a nil
// entry so that double release and use-after-destroy are told apart from
// handles that were never issued. Tombstones are kept in a bounded FIFO;
// the oldest are forgotten once the limit is reached. The mutex guards the registry only: calls
// on different handles may run concurrently, calls on one handle need the
// caller's own exclusion.
package sparse

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/emirpasic/gods/v2/queues/circularbuffer"
	"github.com/google/uuid"
	"github.com/katalvlaran/ndslice/internal/logutil"
)

const (
	ctxCreate       = "Create"
	ctxDestroy      = "Destroy"
	ctxRows         = "Rows"
	ctxCols         = "Cols"
	ctxGet          = "Get"
	ctxSet          = "Set"
	ctxReset        = "Reset"
	ctxIsCompressed = "IsCompressed"
	ctxCompress     = "Compress"
	ctxUncompress   = "Uncompress"
	ctxReshape      = "Reshape"
	ctxClone        = "Clone"
	ctxNNZ          = "NNZ"
	ctxPrint        = "Print"
	ctxToGonum      = "ToGonum"
	ctxToDense      = "ToDense"
)

// Engine owns sparse matrices and hands out Handles to them.
type Engine struct {
	mu    sync.RWMutex
	mats  map[uuid.UUID]*spmat // nil value: destroyed
	tombs *circularbuffer.Queue[uuid.UUID]

	log             *slog.Logger
	compressOnClone bool
}

// NewEngine returns an empty Engine.
func NewEngine(opts ...Option) *Engine {
	o := gatherOptions(opts)

	return &Engine{
		mats:            make(map[uuid.UUID]*spmat),
		tombs:           circularbuffer.New[uuid.UUID](o.tombstones),
		log:             o.log,
		compressOnClone: o.compressOnClone,
	}
}

// Create allocates an empty, compressed rows×cols matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is negative.
func (e *Engine) Create(rows, cols int32) (Handle, error) {
	if rows < 0 || cols < 0 {
		return Handle{}, handleErrorf(ctxCreate, Handle{}, ErrInvalidDimensions, rows, cols)
	}

	return e.register(newSpmat(rows, cols), "sparse matrix created"), nil
}

// register stores m under a fresh handle. The TRACE line is attributed to
// register's caller.
func (e *Engine) register(m *spmat, msg string, args ...any) Handle {
	h := Handle{id: uuid.New()}
	e.mu.Lock()
	e.mats[h.id] = m
	e.mu.Unlock()

	logutil.TraceContext(context.Background(), e.log, 1, msg, append([]any{"handle", h, "rows", m.rows, "cols", m.cols}, args...)...)

	return h
}

// Destroy releases h. Destroying h again reports ErrDoubleRelease.
func (e *Engine) Destroy(h Handle) error {
	e.mu.Lock()
	m, ok := e.mats[h.id]
	switch {
	case !ok:
		e.mu.Unlock()
		return handleErrorf(ctxDestroy, h, ErrUnknownHandle)
	case m == nil:
		e.mu.Unlock()
		return handleErrorf(ctxDestroy, h, ErrDoubleRelease)
	}
	e.bury(h.id)
	e.mu.Unlock()

	logutil.Trace(e.log, "sparse matrix destroyed", "handle", h)

	return nil
}

// bury marks id destroyed, forgetting the oldest tombstone when full.
// The caller holds e.mu.
func (e *Engine) bury(id uuid.UUID) {
	e.mats[id] = nil
	if e.tombs.Full() {
		oldest, _ := e.tombs.Dequeue()
		delete(e.mats, oldest)
	}
	e.tombs.Enqueue(id)
}

// lookup resolves a live handle.
func (e *Engine) lookup(op string, h Handle, args ...any) (*spmat, error) {
	e.mu.RLock()
	m, ok := e.mats[h.id]
	e.mu.RUnlock()
	switch {
	case !ok:
		return nil, handleErrorf(op, h, ErrUnknownHandle, args...)
	case m == nil:
		return nil, handleErrorf(op, h, ErrReleased, args...)
	}

	return m, nil
}

// Live returns the number of handles not yet destroyed.
func (e *Engine) Live() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.mats) - e.tombs.Size()
}

// With creates a rows×cols matrix, passes it to fn and destroys it on every
// exit path, panics included. Errors from fn and Destroy are joined.
func (e *Engine) With(rows, cols int32, fn func(Handle) error) (err error) {
	h, err := e.Create(rows, cols)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, e.Destroy(h))
	}()

	return fn(h)
}

// Close releases every handle that is still alive and logs them as leaked.
// The Engine stays usable; released handles report ErrReleased.
func (e *Engine) Close() error {
	e.mu.Lock()
	var leaked []string
	for id, m := range e.mats {
		if m != nil {
			leaked = append(leaked, id.String())
			e.bury(id)
		}
	}
	e.mu.Unlock()

	if len(leaked) > 0 {
		e.log.Warn("released leaked sparse matrices", "count", len(leaked), "handles", leaked)
	}

	return nil
}
