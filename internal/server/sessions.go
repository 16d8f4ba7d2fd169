package server

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ironsheep/image-resizer/internal/imaging"
)

// errUnknownHandle is returned for handles that were never opened or are
// already closed.
var errUnknownHandle = errors.New("unknown image handle")

// Sessions tracks open Resizers by handle.
//
// Sessions is safe for concurrent use. The map is guarded by an RWMutex and
// each session has its own mutex, so two calls on the same handle run one
// after the other while calls on different handles do not block each other.
type Sessions struct {
	mu    sync.RWMutex
	items map[string]*session
	next  uint64
}

type session struct {
	mu      sync.Mutex
	path    string
	resizer *imaging.Resizer
}

// NewSessions creates an empty session store.
func NewSessions() *Sessions {
	return &Sessions{
		items: make(map[string]*session),
	}
}

// Open decodes the image at path and registers it under a new handle.
func (c *Sessions) Open(path string, opts ...imaging.Option) (string, *imaging.Resizer, error) {
	r, err := imaging.Open(path, opts...)
	if err != nil {
		return "", nil, err
	}

	c.mu.Lock()
	c.next++
	handle := fmt.Sprintf("img-%d", c.next)
	c.items[handle] = &session{path: path, resizer: r}
	c.mu.Unlock()

	return handle, r, nil
}

// With runs fn with the Resizer behind handle while holding that session's
// lock.
func (c *Sessions) With(handle string, fn func(path string, r *imaging.Resizer) error) error {
	c.mu.RLock()
	sess, ok := c.items[handle]
	c.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownHandle, handle)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.resizer == nil {
		return fmt.Errorf("%w: %q", errUnknownHandle, handle)
	}
	return fn(sess.path, sess.resizer)
}

// Close releases the Resizer behind handle and forgets the handle.
func (c *Sessions) Close(handle string) error {
	c.mu.Lock()
	sess, ok := c.items[handle]
	delete(c.items, handle)
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownHandle, handle)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	r := sess.resizer
	sess.resizer = nil
	if r == nil {
		return fmt.Errorf("%w: %q", errUnknownHandle, handle)
	}
	return r.Close()
}

// Clear closes every open session.
func (c *Sessions) Clear() {
	for _, handle := range c.Handles() {
		_ = c.Close(handle)
	}
}

// Handles returns the open handles, sorted.
func (c *Sessions) Handles() []string {
	c.mu.RLock()
	handles := make([]string, 0, len(c.items))
	for h := range c.items {
		handles = append(handles, h)
	}
	c.mu.RUnlock()

	sort.Strings(handles)
	return handles
}
