package dispatcher

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// jobCounter tracks the number of in-flight encode jobs. It is the only
// state the dispatcher and its workers share. The lock is held for the
// mutation alone, never across I/O or encoding, and there is no wait
// primitive: callers poll Read in a sleep loop.
type jobCounter struct {
	logger *logrus.Entry

	mutex  sync.Mutex
	active int64
}

func newJobCounter(logger *logrus.Entry) *jobCounter {
	return &jobCounter{
		logger: logger,
	}
}

func (c *jobCounter) Increment() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.active++
}

// Decrement releases one job slot. A decrement at zero means the slot
// bookkeeping went wrong somewhere; it is logged and the counter stays at
// zero instead of going negative.
func (c *jobCounter) Decrement() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.active == 0 {
		c.logger.Warn("Job counter decremented at zero")

		return
	}

	c.active--
}

func (c *jobCounter) Read() int64 {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.active
}
