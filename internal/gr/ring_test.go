package gr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundedRingBasic(t *testing.T) {
	r := NewBoundedRing[int](3)
	r.Push(1)
	r.Push(2)
	assert.Equal(t, 2, r.Size())
	assert.Equal(t, []int{1, 2}, r.Items())
}

func TestBoundedRingEvictsOldest(t *testing.T) {
	r := NewBoundedRing[int](3)
	r.Push(1)
	r.Push(2)
	r.Push(3)
	r.Push(4)
	assert.Equal(t, 3, r.Size())
	assert.Equal(t, []int{2, 3, 4}, r.Items())
}

func TestBoundedRingZeroCapacityIsNoop(t *testing.T) {
	r := NewBoundedRing[int](0)
	r.Push(1)
	r.Push(2)
	assert.Equal(t, 0, r.Size())
	assert.Empty(t, r.Items())
}

func TestBoundedRingClear(t *testing.T) {
	r := NewBoundedRing[int](2)
	r.Push(1)
	r.Push(2)
	r.Clear()
	assert.Equal(t, 0, r.Size())
	r.Push(3)
	assert.Equal(t, []int{3}, r.Items())
}
