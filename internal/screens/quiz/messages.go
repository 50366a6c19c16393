package quiz

import (
	qz "github.com/abhisek/contentquiz/internal/quiz"
)

// DueMsg carries an auto-advance ticket from the session timer into the
// event loop. The app sends it through the program.
type DueMsg struct {
	Ticket qz.Ticket
}

// recordedMsg confirms a session event write.
type recordedMsg struct {
	Err error
}
