package event

// Status is returned by event and hover handlers.
type Status uint8

const (
	// Ignored lets dispatch continue to the next node on the path.
	Ignored Status = iota
	// Captured stops dispatch.
	Captured
)

func (s Status) String() string {
	if s == Captured {
		return "captured"
	}
	return "ignored"
}

// Or returns Captured if either status is.
func (s Status) Or(other Status) Status {
	if s == Captured || other == Captured {
		return Captured
	}
	return Ignored
}
