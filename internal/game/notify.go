package game

// Event is a gameplay notification.
type Event int

// Event values.
const (
	EventCorrect Event = iota
	EventWrong
)

// Notifier receives gameplay events, e.g. to play a sound.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

// Notify implements Notifier.
func (f NotifierFunc) Notify(e Event) { f(e) }

type nopNotifier struct{}

func (nopNotifier) Notify(Event) {}
