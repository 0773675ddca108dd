package common

import (
	"fmt"
	"time"
)

// TimeTracker measures a labelled section of work, Close reports it
type TimeTracker struct {
	label string
	start time.Time
}

func NewTimer(label string) TimeTracker {
	return TimeTracker{
		label: label,
		start: time.Now(),
	}
}

func (t TimeTracker) Close() {
	fmt.Printf("%s took %v\n", t.label, time.Since(t.start))
}
