//go:build ios || android

package orientation

// Supported reports whether this build has a platform orientation source.
const Supported = true

// PlatformSource returns DefaultCenter and the device state fed by Report.
func PlatformSource() (Source, bool) {
	return Source{Notifier: DefaultCenter, Device: CurrentDevice()}, true
}
