package orientation

import (
	"image/draw"

	"github.com/gogpu/ggview"
)

// Source bundles the capabilities a relay needs.
type Source struct {
	Notifier Notifier
	Device   Device
}

// OnRotate returns a modifier that calls action every time the device
// rotates while the decorated view is mounted. The subscription is
// created on Mount and cancelled on Unmount.
func OnRotate(src Source, action func(Orientation), opts ...Option) ggview.Modifier {
	relay := NewRelay(src.Notifier, src.Device, opts...)
	return func(v ggview.View) ggview.View {
		return &rotateView{inner: v, relay: relay, action: action}
	}
}

// OnRotatePlatform is OnRotate with PlatformSource. On builds without a
// platform source it returns a modifier that leaves the view unchanged.
func OnRotatePlatform(action func(Orientation), opts ...Option) ggview.Modifier {
	src, ok := PlatformSource()
	if !ok {
		return func(v ggview.View) ggview.View { return v }
	}
	return OnRotate(src, action, opts...)
}

type rotateView struct {
	inner  ggview.View
	relay  *Relay
	action func(Orientation)
	sub    *Subscription
}

func (v *rotateView) Draw(dst draw.Image, bounds ggview.Rect) {
	v.inner.Draw(dst, bounds)
}

func (v *rotateView) Mount() {
	if v.sub == nil {
		v.sub = v.relay.Attach(v.action)
	}
	ggview.Mount(v.inner)
}

func (v *rotateView) Unmount() {
	ggview.Unmount(v.inner)
	if v.sub != nil {
		v.sub.Cancel()
		v.sub = nil
	}
}
