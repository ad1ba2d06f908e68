package try

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// TimedTry pairs a Try with the interval over which its computation ran.
type TimedTry[T any] struct {
	Try[T]
	span timespan.TimeSpan
}

// TimeSpan returns the interval from the computation's start to its end,
// whether it succeeded or failed.
func (t TimedTry[T]) TimeSpan() timespan.TimeSpan {
	return t.span
}

// Timed captures fn's outcome along with the wall-clock interval it occupied.
func Timed[T any](fn func() (T, error)) TimedTry[T] {
	start := time.Now()
	outcome := Of(fn)
	return TimedTry[T]{
		Try:  outcome,
		span: timespan.BetweenTimes(start, time.Now()),
	}
}
