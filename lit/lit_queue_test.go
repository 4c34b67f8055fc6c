package lit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Insert(New(0, false))
	q.Insert(New(1, true))
	q.Insert(New(2, false))

	assert.Equal(t, 3, q.Size())
	assert.Equal(t, New(0, false), q.Dequeue())
	assert.Equal(t, New(1, true), q.Dequeue())
	assert.Equal(t, New(2, false), q.Dequeue())
	assert.Equal(t, 0, q.Size())
}

func TestQueueDequeueEmpty(t *testing.T) {
	q := NewQueue()

	assert.Equal(t, Undef, q.Dequeue())
}

func TestQueueClear(t *testing.T) {
	q := NewQueue()
	q.Insert(New(0, false))
	q.Insert(New(1, false))
	q.Clear()

	assert.Equal(t, 0, q.Size())
	assert.Equal(t, Undef, q.Dequeue())
}
