package rainsense

// sum holds up to WindowSize*255.
type sum = uint16

// movingAverage stores the mean of the last WindowSize values.
type movingAverage struct {
	buffer [WindowSize]byte
	idx    int
	ready  bool
}

// add records v and returns the truncated mean of the window. The first value
// fills the whole window and is returned as is.
func (m *movingAverage) add(v byte) byte {
	if !m.ready {
		for i := range m.buffer {
			m.buffer[i] = v
		}
		m.idx = 0
		m.ready = true
		return v
	}

	m.buffer[m.idx] = v
	m.idx++
	m.idx %= WindowSize

	var s sum
	for _, b := range m.buffer {
		s += sum(b)
	}

	return byte(s / WindowSize)
}

func (m *movingAverage) reset() {
	*m = movingAverage{}
}
