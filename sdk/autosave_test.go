package sdk

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingSaver collects every committed notes payload.
type recordingSaver struct {
	mu      sync.Mutex
	commits []string
	err     error
	delay   time.Duration
}

func (s *recordingSaver) UpdateProjectNotes(ctx context.Context, projectID, notes string) error {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commits = append(s.commits, notes)
	return s.err
}

func (s *recordingSaver) all() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.commits))
	copy(out, s.commits)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestAutosaver_BurstCoalescesToOneCommit(t *testing.T) {
	saver := &recordingSaver{}
	a := NewAutosaver("p-1", saver, WithQuietPeriod(30*time.Millisecond))
	defer a.Close()

	a.SetContent("d")
	a.SetContent("dr")
	a.SetContent("dra")
	a.SetContent("draft")

	waitFor(t, func() bool { return len(saver.all()) == 1 })

	assert.Equal(t, []string{"draft"}, saver.all())
	assert.Equal(t, AutosaveIdle, a.State())
}

func TestAutosaver_SpacedEditsCommitSeparately(t *testing.T) {
	saver := &recordingSaver{}
	a := NewAutosaver("p-1", saver, WithQuietPeriod(20*time.Millisecond))
	defer a.Close()

	a.SetContent("first")
	waitFor(t, func() bool { return len(saver.all()) == 1 })

	a.SetContent("second")
	waitFor(t, func() bool { return len(saver.all()) == 2 })

	assert.Equal(t, []string{"first", "second"}, saver.all())
}

func TestAutosaver_EditDuringCommitIsRedebounced(t *testing.T) {
	saver := &recordingSaver{delay: 50 * time.Millisecond}
	a := NewAutosaver("p-1", saver, WithQuietPeriod(10*time.Millisecond))
	defer a.Close()

	a.SetContent("first")
	waitFor(t, func() bool { return a.State() == AutosaveSaving })

	a.SetContent("second")

	waitFor(t, func() bool { return len(saver.all()) == 2 })
	assert.Equal(t, []string{"first", "second"}, saver.all())
}

func TestAutosaver_FailureKeepsContent(t *testing.T) {
	saver := &recordingSaver{err: errors.New("backend down")}

	errCh := make(chan error, 1)
	a := NewAutosaver("p-1", saver,
		WithQuietPeriod(10*time.Millisecond),
		WithErrorHandler(func(err error) { errCh <- err }),
	)
	defer a.Close()

	a.SetContent("unlucky edit")

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("error handler was not called")
	}
	assert.Error(t, a.LastError())
	assert.Equal(t, "unlucky edit", a.Content())
	// The failed save does not leave the autosaver stuck.
	assert.Equal(t, AutosaveIdle, a.State())
}

func TestAutosaver_StateTransitions(t *testing.T) {
	saver := &recordingSaver{}
	a := NewAutosaver("p-1", saver, WithQuietPeriod(50*time.Millisecond))
	defer a.Close()

	assert.Equal(t, AutosaveIdle, a.State())
	a.SetContent("draft")
	assert.Equal(t, AutosaveDirty, a.State())

	waitFor(t, func() bool { return a.State() == AutosaveIdle })
	assert.Equal(t, []string{"draft"}, saver.all())
}

func TestAutosaver_Flush(t *testing.T) {
	saver := &recordingSaver{}
	a := NewAutosaver("p-1", saver, WithQuietPeriod(10*time.Second))
	defer a.Close()

	a.SetContent("draft")
	a.Flush()

	assert.Equal(t, []string{"draft"}, saver.all())
}

func TestAutosaver_CloseStopsCommits(t *testing.T) {
	saver := &recordingSaver{}
	a := NewAutosaver("p-1", saver, WithQuietPeriod(10*time.Millisecond))

	a.SetContent("draft")
	a.Close()
	a.SetContent("after close")

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, saver.all())
}
