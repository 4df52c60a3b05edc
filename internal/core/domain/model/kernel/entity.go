package kernel

import "time"

// Entity is a record held by a registry, identified by a string identifier.
type Entity interface {
	ID() string
}

// Candidate is a record that has not been admitted to its registry yet.
// ID returns the raw identifier so the registry can check uniqueness first;
// Admit runs every remaining check in declared order and returns the admitted
// entity or the first violated rule.
type Candidate[T Entity] interface {
	ID() string
	Admit() (T, error)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
