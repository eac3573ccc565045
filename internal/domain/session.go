package domain

// Session carries the shift the operator is working in. It is passed
// explicitly to the services instead of being looked up from storage.
type Session struct {
	Shift Shift
	// Manual is true when the operator picked the shift instead of
	// letting it follow the clock.
	Manual bool
}

// AutoSession derives the session shift from the clock's current hour.
func AutoSession(clock Clock) Session {
	return Session{Shift: ShiftForTime(clock.Now())}
}

// WithShift returns a copy of the session pinned to the given shift.
func (s Session) WithShift(shift Shift) Session {
	return Session{Shift: shift, Manual: true}
}
