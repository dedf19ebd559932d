package router

// Location is the current fragment. Changing it queues a change event, and
// setting the fragment it already holds queues nothing.
type Location struct {
	fragment string
	events   []string
}

func NewLocation(fragment string) *Location {
	return &Location{fragment: fragment}
}

func (l *Location) Current() string {
	return l.fragment
}

// Set moves to fragment and reports whether it changed.
func (l *Location) Set(fragment string) bool {
	if fragment == l.fragment {
		return false
	}
	l.fragment = fragment
	l.events = append(l.events, fragment)
	return true
}

// Next pops the oldest queued change event.
func (l *Location) Next() (string, bool) {
	if len(l.events) == 0 {
		return "", false
	}
	f := l.events[0]
	l.events = l.events[1:]
	return f, true
}

// Pending reports how many change events are queued.
func (l *Location) Pending() int {
	return len(l.events)
}
