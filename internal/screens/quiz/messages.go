package quiz

import "time"

// timerTickMsg is sent every second to refresh the question timer.
type timerTickMsg time.Time

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct {
	Quit bool
}
