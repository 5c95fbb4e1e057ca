package sdk

import (
	"context"
	"sync"
	"time"
)

// AutosaveState describes where the autosaver is in its cycle.
type AutosaveState int

const (
	// AutosaveIdle means the stored value matches the last edit.
	AutosaveIdle AutosaveState = iota
	// AutosaveDirty means an edit is waiting out the quiet period.
	AutosaveDirty
	// AutosaveSaving means a commit is in flight.
	AutosaveSaving
)

const defaultQuietPeriod = time.Second

// NotesSaver is the commit target for an autosave cycle.
type NotesSaver interface {
	UpdateProjectNotes(ctx context.Context, projectID, notes string) error
}

// AutosaveOption configures an Autosaver.
type AutosaveOption func(*Autosaver)

// WithQuietPeriod overrides the debounce window.
func WithQuietPeriod(d time.Duration) AutosaveOption {
	return func(a *Autosaver) { a.quiet = d }
}

// WithErrorHandler registers a callback for failed commits.
func WithErrorHandler(fn func(error)) AutosaveOption {
	return func(a *Autosaver) { a.onError = fn }
}

// Autosaver debounces note edits and commits the latest content once the
// user has been quiet long enough. At most one commit is in flight at a
// time; edits arriving during a commit are re-debounced after it returns.
// A failed commit never reverts the local content.
type Autosaver struct {
	projectID string
	saver     NotesSaver
	quiet     time.Duration
	onError   func(error)

	mu      sync.Mutex
	content string
	timer   *time.Timer
	dirty   bool
	saving  bool
	pending bool
	closed  bool
	lastErr error
}

func NewAutosaver(projectID string, saver NotesSaver, opts ...AutosaveOption) *Autosaver {
	a := &Autosaver{
		projectID: projectID,
		saver:     saver,
		quiet:     defaultQuietPeriod,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetContent records an edit and restarts the quiet-period timer.
func (a *Autosaver) SetContent(content string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.content = content
	a.dirty = true
	if a.saving {
		// Re-debounce once the in-flight commit returns.
		a.pending = true
		return
	}
	a.resetTimerLocked()
}

func (a *Autosaver) resetTimerLocked() {
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.quiet, a.fire)
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	if a.closed || !a.dirty || a.saving {
		a.mu.Unlock()
		return
	}
	content := a.content
	a.dirty = false
	a.saving = true
	a.mu.Unlock()

	err := a.saver.UpdateProjectNotes(context.Background(), a.projectID, content)

	a.mu.Lock()
	a.saving = false
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.lastErr = err
	if a.pending {
		a.pending = false
		a.resetTimerLocked()
	}
	a.mu.Unlock()

	if err != nil && a.onError != nil {
		a.onError(err)
	}
}

// Flush commits dirty content immediately, skipping the quiet period.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.closed || !a.dirty || a.saving {
		a.mu.Unlock()
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.mu.Unlock()
	a.fire()
}

// State reports the current point in the cycle.
func (a *Autosaver) State() AutosaveState {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch {
	case a.saving:
		return AutosaveSaving
	case a.dirty:
		return AutosaveDirty
	default:
		return AutosaveIdle
	}
}

// LastError returns the outcome of the most recent commit. It does not
// block new edits; the next successful commit clears it.
func (a *Autosaver) LastError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// Content returns the latest local content, regardless of save outcomes.
func (a *Autosaver) Content() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.content
}

// Close stops the timer and drops the result of any in-flight commit.
func (a *Autosaver) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
	}
}
