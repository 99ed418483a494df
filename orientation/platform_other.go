//go:build !ios && !android

package orientation

// Supported reports whether this build has a platform orientation source.
const Supported = false

// PlatformSource reports false: desktop and server builds have no device
// rotation to observe.
func PlatformSource() (Source, bool) {
	return Source{}, false
}
