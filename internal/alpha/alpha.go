// Package alpha implements the cooperative learning-rate decay shared by
// all training workers.
package alpha

import (
	"sync"
	"sync/atomic"
	"time"
)

// updateWordNumber is how many processed words accumulate before a
// worker recomputes the shared rate, matching the reference constant.
const updateWordNumber = 1e5

// minReduceCoefficient floors the decayed rate at initial * this value,
// so alpha never reaches zero.
const minReduceCoefficient = 1e-4

// Reporter receives progress updates. Nil is a valid Reporter (Controller
// skips reporting).
type Reporter interface {
	Report(progress float64, wordsPerSec float64, current float64)
}

// Controller holds the single shared alpha value every worker reads and
// occasionally rewrites. All fields that cross goroutines are atomics,
// plus a try-lock around the (rare) reporting path so at most one
// worker prints a progress line at a time.
type Controller struct {
	initial         float64
	totalTrainWords uint64
	iterations      int

	currentBits  uint64 // float64 bits, accessed via atomic
	wordsDone    int64
	lastReported int64
	reportMu     sync.Mutex
	reportBusy   int32
	startTime    time.Time

	reporter Reporter
}

// New builds a Controller for a training run of totalTrainWords words
// repeated over iterations epochs, starting at the given initial rate.
func New(initial float64, totalTrainWords uint64, iterations int, reporter Reporter) *Controller {
	c := &Controller{
		initial:         initial,
		totalTrainWords: totalTrainWords,
		iterations:      iterations,
		startTime:       time.Now(),
		reporter:        reporter,
	}
	atomic.StoreUint64(&c.currentBits, floatBits(initial))
	return c
}

// Current returns the current shared learning rate.
func (c *Controller) Current() float64 {
	return floatFromBits(atomic.LoadUint64(&c.currentBits))
}

// AddWordsProcessed records that a worker finished n more words since
// its last report, and recomputes + decays the shared rate whenever the
// cumulative count crosses updateWordNumber. It also attempts (without
// blocking) to emit a progress report.
func (c *Controller) AddWordsProcessed(n int) {
	done := atomic.AddInt64(&c.wordsDone, int64(n))
	last := atomic.LoadInt64(&c.lastReported)
	if done-last < updateWordNumber {
		return
	}
	if !atomic.CompareAndSwapInt64(&c.lastReported, last, done) {
		return
	}

	total := float64(c.totalTrainWords) * float64(c.iterations)
	progress := float64(done) / (total + 1)
	next := c.initial * (1 - progress)
	if floor := c.initial * minReduceCoefficient; next < floor {
		next = floor
	}
	atomic.StoreUint64(&c.currentBits, floatBits(next))

	if c.reporter == nil {
		return
	}
	if !atomic.CompareAndSwapInt32(&c.reportBusy, 0, 1) {
		return
	}
	elapsed := time.Since(c.startTime).Seconds()
	var wps float64
	if elapsed > 0 {
		wps = float64(done) / elapsed / 1000
	}
	c.reporter.Report(progress*100, wps, next)
	atomic.StoreInt32(&c.reportBusy, 0)
}

// WordsProcessed returns the cumulative processed-word count across all
// workers, for the ambient logger and for tests.
func (c *Controller) WordsProcessed() int64 {
	return atomic.LoadInt64(&c.wordsDone)
}
