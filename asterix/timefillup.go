// asterix/timefillup.go
package asterix

// Time-of-day on the ASTERIX wire is frequently truncated to its lower two
// octets (16 bits of a 24-bit 1/128s counter) to save space; reconstructing
// the missing high byte requires remembering the last full time-of-day seen
// for the category. Grounded on original_source/src/fillup.cpp's
// fillup_tod, carried over branch-for-branch.
const (
	// midnightTOD is 24h expressed in 1/128s units (24*3600*128).
	midnightTOD = 0x00A8C000

	// afterMidnightWindow is one minute in 1/128s units; last_tod at or
	// below this value means "we are in the first minute after midnight".
	afterMidnightWindow = 7680

	// c2Threshold bounds the "near-equal modulo 256" test on the upper
	// byte difference between the last and partial time-of-day.
	c2Threshold = 5

	// maxUB0AfterMidnight bounds how far past midnight the rewind branch
	// (case 2's special midnight-crossing correction) may fire.
	maxUB0AfterMidnight = 1
)

// TimeOfDayFiller reconstructs a full 24-bit time-of-day from a truncated
// 16-bit partial value, tracking state across an entire category's record
// stream. Zero value is ready to use (lastTODAvailable starts false, so
// the first Fillup call always reports !ok per spec.md §4.2's contract).
type TimeOfDayFiller struct {
	lastTOD          uint32
	lastTODAvailable bool
	afterMidnight    bool
}

// Fillup reconstructs the full time-of-day for a truncated 16-bit partial
// value. ok is false when no baseline is available yet or the partial value
// cannot be reconciled with the last observed full time-of-day (§4.2 "skip").
func (f *TimeOfDayFiller) Fillup(partial uint16) (tod uint32, ok bool) {
	if !f.lastTODAvailable {
		return 0, false
	}

	base := f.lastTOD & 0x00FF0000

	ub0 := byte((f.lastTOD >> 16) & 0xFF)
	ub1 := byte((partial >> 8) & 0xFF)

	var ubDiff int16 = int16(ub0) - int16(ub1)
	if ubDiff < 0 {
		ubDiff = -ubDiff
	}
	nearEqualMod256 := ubDiff <= c2Threshold || ubDiff >= (255-c2Threshold)

	var merged bool
	switch {
	case ub0 == 0xFF && ub1 == 0x00:
		// Case 1: partial time of day is one unit higher.
		tod = base | uint32(partial)
		tod += 0x00010000
		merged = true

	case nearEqualMod256:
		// Case 2: upper bytes fit (somehow).
		if f.afterMidnight && ub0 <= maxUB0AfterMidnight && ub1 >= 0xBD {
			tod = 0x00A80000 | uint32(partial)
		} else {
			tod = base | uint32(partial)
			if partial > 0xFA00 {
				if uint16(f.lastTOD&0x0000FFFF) < 0x0500 {
					tod -= 0x00010000
				}
			}
		}
		merged = true

	case ub0 > 245 && 256+int(ub1) < int(ub0)+10:
		// Case 3: fit near overflow.
		tod = base | uint32(partial)
		merged = true

	case f.lastTOD&0x00FFFF00 >= 0x00A8BD00:
		// Case 4: crossing midnight.
		tod = uint32(partial)
		merged = true
	}

	if !merged {
		return 0, false
	}

	if tod > f.lastTOD {
		if !f.afterMidnight || tod <= afterMidnightWindow {
			f.lastTOD = tod
		}
		f.afterMidnight = f.lastTOD <= afterMidnightWindow
	}

	return tod, true
}

// Observe records a fully-qualified time-of-day (e.g. decoded from a
// 3-octet, non-truncated item) as the new baseline for subsequent Fillup
// calls, without going through the reconciliation branches above.
func (f *TimeOfDayFiller) Observe(full uint32) {
	f.lastTOD = full & 0x00FFFFFF
	f.lastTODAvailable = true
	f.afterMidnight = f.lastTOD <= afterMidnightWindow
}

// Reset clears the filler back to its zero state (no baseline available).
func (f *TimeOfDayFiller) Reset() {
	*f = TimeOfDayFiller{}
}

// Available reports whether a baseline time-of-day has been observed.
func (f *TimeOfDayFiller) Available() bool {
	return f.lastTODAvailable
}
