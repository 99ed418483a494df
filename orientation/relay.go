package orientation

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/ggview"
)

// Option configures a Relay.
type Option func(*relayOptions)

type relayOptions struct {
	name   string
	logger *slog.Logger
}

// WithNotificationName observes name instead of DidChangeNotification.
func WithNotificationName(name string) Option {
	return func(o *relayOptions) {
		o.name = name
	}
}

// WithLogger sets the logger used by the relay. By default the relay
// logs through ggview.Logger at the time Attach is called.
func WithLogger(l *slog.Logger) Option {
	return func(o *relayOptions) {
		o.logger = l
	}
}

// Relay forwards orientation changes from a Notifier to callbacks.
type Relay struct {
	notifier Notifier
	device   Device
	opts     relayOptions
}

// NewRelay creates a relay that observes n and reads the orientation
// from d on every delivery.
func NewRelay(n Notifier, d Device, opts ...Option) *Relay {
	o := relayOptions{name: DidChangeNotification}
	for _, opt := range opts {
		opt(&o)
	}
	return &Relay{notifier: n, device: d, opts: o}
}

// Attach registers callback and returns the subscription that owns the
// registration. The callback receives the orientation the device reports
// at delivery time. A nil callback, or a relay without a notifier or
// device, yields an already cancelled subscription.
func (r *Relay) Attach(callback func(Orientation)) *Subscription {
	s := &Subscription{}
	if callback == nil || r.notifier == nil || r.device == nil {
		s.released.Store(true)
		s.once.Do(func() {})
		return s
	}

	log := r.opts.logger
	if log == nil {
		log = ggview.Logger()
	}
	s.log = log
	s.name = r.opts.name

	s.cancel = r.notifier.Observe(r.opts.name, func(Notification) {
		if s.released.Load() {
			return
		}
		o := r.device.Orientation()
		log.Debug("orientation: delivering change", slog.String("orientation", o.String()))
		callback(o)
	})

	log.Debug("orientation: attached", slog.String("notification", s.name))
	return s
}

// Subscription ties a callback registration to its owner. Cancel releases
// it exactly once.
//
// Deliveries and Cancel are expected on the same goroutine, normally the
// UI goroutine that posts notifications. Under that model no callback runs
// once Cancel has returned, including a cancel made from inside another
// observer during the same delivery. Cancel may be called from another
// goroutine without racing, but a delivery that has already passed the
// released check can still finish after Cancel returns.
type Subscription struct {
	once     sync.Once
	released atomic.Bool
	cancel   func()
	log      *slog.Logger
	name     string
}

// Cancel marks the subscription released and unsubscribes from the
// notifier. Calls after the first do nothing.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.released.Store(true)
		if s.cancel != nil {
			s.cancel()
		}
		if s.log != nil {
			s.log.Debug("orientation: detached", slog.String("notification", s.name))
		}
	})
}

// Active reports whether the subscription has not been cancelled.
func (s *Subscription) Active() bool {
	return !s.released.Load()
}
