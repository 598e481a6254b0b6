package session

import (
	"fmt"
	"time"
)

// Report summarises a finished game.
type Report struct {
	Elapsed time.Duration
	Turns   int
}

// TimeText returns the elapsed time as "h:m:s" without zero padding.
func (r Report) TimeText() string {
	return FormatClock(r.Elapsed)
}

// Lines returns the finish dialog text.
func (r Report) Lines() []string {
	return []string{
		"You played for " + r.TimeText(),
		fmt.Sprintf("Number of turns: %d", r.Turns),
	}
}

// FormatClock renders d as "h:m:s" without zero padding, e.g. "0:1:5".
// Fractions of a second are dropped.
func FormatClock(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%d:%d", secs/3600, secs/60%60, secs%60)
}
