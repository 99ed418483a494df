// Package orientation relays physical device rotation to view code.
//
// A [Relay] observes [DidChangeNotification] on a [Notifier]. Each time
// the notification fires it asks a [Device] for the current orientation
// and hands that value to the callback registered with [Relay.Attach].
// The payload of the notification itself is ignored.
//
// Only mobile builds (ios, android) have a platform source; see
// [PlatformSource]. Tests and other hosts pass their own [Source].
package orientation

// Orientation is the physical orientation of the device.
type Orientation int

const (
	// Unknown means the orientation cannot be determined.
	Unknown Orientation = iota

	// Portrait is upright with the home edge at the bottom.
	Portrait

	// PortraitUpsideDown is upright with the home edge at the top.
	PortraitUpsideDown

	// LandscapeLeft is upright, rotated so the home edge is on the right.
	LandscapeLeft

	// LandscapeRight is upright, rotated so the home edge is on the left.
	LandscapeRight

	// FaceUp is flat with the screen facing up.
	FaceUp

	// FaceDown is flat with the screen facing down.
	FaceDown
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Unknown:
		return "unknown"
	case Portrait:
		return "portrait"
	case PortraitUpsideDown:
		return "portrait-upside-down"
	case LandscapeLeft:
		return "landscape-left"
	case LandscapeRight:
		return "landscape-right"
	case FaceUp:
		return "face-up"
	case FaceDown:
		return "face-down"
	default:
		return "invalid"
	}
}

// IsValid reports whether o is one of the defined orientations.
func (o Orientation) IsValid() bool {
	return o >= Unknown && o <= FaceDown
}

// IsPortrait reports whether the device is upright in either portrait
// orientation.
func (o Orientation) IsPortrait() bool {
	return o == Portrait || o == PortraitUpsideDown
}

// IsLandscape reports whether the device is upright in either landscape
// orientation.
func (o Orientation) IsLandscape() bool {
	return o == LandscapeLeft || o == LandscapeRight
}

// IsFlat reports whether the device lies face up or face down.
func (o Orientation) IsFlat() bool {
	return o == FaceUp || o == FaceDown
}
