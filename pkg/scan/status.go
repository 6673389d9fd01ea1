package scan

// Status is the unsafe-code posture of a package.
type Status int

const (
	// NoneDetectedForbidsUnsafe: no unsafe usage found and the crate
	// declares #![forbid(unsafe_code)].
	NoneDetectedForbidsUnsafe Status = iota
	// NoneDetectedAllowsUnsafe: no unsafe usage found but the crate does
	// not forbid it.
	NoneDetectedAllowsUnsafe
	// UnsafeDetected: at least one used unsafe item was found.
	UnsafeDetected
)

// Statuses lists every status in declaration order.
func Statuses() []Status {
	return []Status{NoneDetectedForbidsUnsafe, NoneDetectedAllowsUnsafe, UnsafeDetected}
}

// String returns a short machine-friendly name.
func (s Status) String() string {
	switch s {
	case NoneDetectedForbidsUnsafe:
		return "forbids-unsafe"
	case NoneDetectedAllowsUnsafe:
		return "allows-unsafe"
	case UnsafeDetected:
		return "unsafe-detected"
	default:
		return "unknown"
	}
}

// Symbol returns the legend marker for s. Ascii selects the 7-bit variant
// for terminals that cannot display emoji.
func (s Status) Symbol(ascii bool) string {
	switch s {
	case NoneDetectedForbidsUnsafe:
		if ascii {
			return ":)"
		}
		return "🔒"
	case NoneDetectedAllowsUnsafe:
		if ascii {
			return "?"
		}
		return "❓"
	case UnsafeDetected:
		if ascii {
			return "!"
		}
		return "☢️"
	default:
		return " "
	}
}

// Description is the legend text printed below a report.
func (s Status) Description() string {
	switch s {
	case NoneDetectedForbidsUnsafe:
		return "No `unsafe` usage found, declares #![forbid(unsafe_code)]"
	case NoneDetectedAllowsUnsafe:
		return "No `unsafe` usage found, missing #![forbid(unsafe_code)]"
	case UnsafeDetected:
		return "`unsafe` usage found"
	default:
		return ""
	}
}
