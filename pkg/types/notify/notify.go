package notify

// Sink delivers a user-facing notification. Fire and forget: callers
// log delivery errors but never block on them.
type Sink interface {
	Notify(title, body string) error
}
