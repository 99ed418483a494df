package orientation

import "sync"

// DidChangeNotification is posted whenever the device orientation changes.
const DidChangeNotification = "ggview.orientation.didChange"

// Notification is a named broadcast. Object carries an optional payload.
type Notification struct {
	Name   string
	Object any
}

// Notifier is a publish/subscribe facility keyed by notification name.
// Observe registers fn and returns a function that removes it again.
type Notifier interface {
	Observe(name string, fn func(Notification)) (cancel func())
}

// Center is an in-process Notifier. Observers run synchronously on the
// goroutine that calls Post, in registration order.
type Center struct {
	mu        sync.RWMutex
	nextID    uint64
	observers map[string][]observer
}

type observer struct {
	id uint64
	fn func(Notification)
}

// NewCenter creates an empty notification center.
func NewCenter() *Center {
	return &Center{observers: make(map[string][]observer)}
}

// DefaultCenter is the center platform bindings post to.
var DefaultCenter = NewCenter()

// Observe registers fn for notifications called name. The returned
// cancel function is safe to call more than once.
func (c *Center) Observe(name string, fn func(Notification)) (cancel func()) {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.observers[name] = append(c.observers[name], observer{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { c.remove(name, id) })
	}
}

func (c *Center) remove(name string, id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := c.observers[name]
	for i, o := range list {
		if o.id == id {
			// Copy so snapshots taken by Post stay intact.
			next := make([]observer, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			if len(next) == 0 {
				delete(c.observers, name)
			} else {
				c.observers[name] = next
			}
			return
		}
	}
}

// Post delivers n to every observer of n.Name. The observer list is
// snapshotted first, so observers may cancel themselves or others while
// running.
func (c *Center) Post(n Notification) {
	c.mu.RLock()
	list := c.observers[n.Name]
	c.mu.RUnlock()

	for _, o := range list {
		o.fn(n)
	}
}

// Len returns the number of observers registered for name.
func (c *Center) Len(name string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.observers[name])
}
