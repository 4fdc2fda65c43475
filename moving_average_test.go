package rainsense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovingAverage_ColdStart(t *testing.T) {
	var m movingAverage
	// garbage left in the buffer must not leak into the first reading
	m.buffer = [WindowSize]byte{9, 9, 9, 9, 9, 9, 9, 9}
	m.idx = 5

	assert.Equal(t, byte(137), m.add(137))
	assert.True(t, m.ready)
	assert.Equal(t, 0, m.idx)
	for i, b := range m.buffer {
		assert.Equal(t, byte(137), b, "slot %d", i)
	}
}

func TestMovingAverage_Constant(t *testing.T) {
	for _, v := range []byte{0, 1, 77, 128, 254, 255} {
		var m movingAverage
		for i := 0; i < 3*WindowSize; i++ {
			assert.Equal(t, v, m.add(v), "value %d call %d", v, i)
		}
	}
}

func TestMovingAverage_Transient(t *testing.T) {
	var m movingAverage
	assert.Equal(t, byte(200), m.add(200))
	assert.Equal(t, byte(175), m.add(0))
}

func TestMovingAverage_Truncates(t *testing.T) {
	var m movingAverage
	m.add(0)
	// 7/8 truncates to 0, 15/8 to 1
	assert.Equal(t, byte(0), m.add(7))
	assert.Equal(t, byte(1), m.add(8))
}

func TestMovingAverage_Wrap(t *testing.T) {
	var m movingAverage
	m.add(255)

	r := [WindowSize]byte{10, 20, 30, 40, 50, 60, 70, 80}
	for i, v := range r {
		assert.Equal(t, i, m.idx)
		m.add(v)
	}

	assert.Equal(t, 0, m.idx)
	assert.Equal(t, r, m.buffer)
	assert.Equal(t, byte(49), m.add(45)) // (360 - 10 + 45) / 8
}

func TestMovingAverage_NoOverflow(t *testing.T) {
	var m movingAverage
	m.add(255)
	for i := 0; i < WindowSize; i++ {
		assert.Equal(t, byte(255), m.add(255))
	}
}

func TestMovingAverage_Reset(t *testing.T) {
	var m movingAverage
	m.add(10)
	m.add(90)
	m.reset()

	assert.False(t, m.ready)
	assert.Equal(t, byte(240), m.add(240))
}
