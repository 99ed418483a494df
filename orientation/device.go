package orientation

import "sync/atomic"

// Device reports the current physical orientation.
type Device interface {
	Orientation() Orientation
}

// DeviceFunc adapts a function to the Device interface.
type DeviceFunc func() Orientation

// Orientation calls f().
func (f DeviceFunc) Orientation() Orientation { return f() }

// deviceState holds the last orientation reported by the platform.
type deviceState struct {
	v atomic.Int32
}

func (d *deviceState) Orientation() Orientation {
	return Orientation(d.v.Load())
}

var current deviceState

// CurrentDevice returns the device state that Report updates.
func CurrentDevice() Device {
	return &current
}

// Report records o as the current device orientation and posts
// DidChangeNotification on DefaultCenter. Platform bindings call it from
// their native rotation callback.
func Report(o Orientation) {
	current.v.Store(int32(o))
	DefaultCenter.Post(Notification{Name: DidChangeNotification, Object: o})
}
