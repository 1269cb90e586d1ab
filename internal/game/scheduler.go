package game

import "time"

// Scheduler runs fn every interval until the returned cancel is called.
// fn must be invoked on the goroutine that owns the Controller.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}
