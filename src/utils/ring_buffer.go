package utils

import (
	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// RingBuffer is a fixed-size circular buffer of tick observations.
// True ring buffer - no resizing allowed!
// -----------------------------------------------------------------------------

type RingBuffer struct {
	// Data storage as 2D slice (rows x features)
	data     [][models.RB_NUM_FEATURES]float64
	symbol   string
	capacity int
	index    int // Next write position
	size     int // Current number of elements
}

// -----------------------------------------------------------------------------

// NewRingBuffer creates a new buffer with fixed capacity
func NewRingBuffer(symbol string, capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 100 // Default bounded history
	}

	return &RingBuffer{
		data:     make([][models.RB_NUM_FEATURES]float64, capacity),
		symbol:   symbol,
		capacity: capacity,
		index:    0,
		size:     0,
	}
}

// -----------------------------------------------------------------------------

// Append adds a tick observation. Oldest entry is overwritten on overflow.
func (rb *RingBuffer) Append(point models.MPricePoint) {
	rb.data[rb.index] = [models.RB_NUM_FEATURES]float64{
		float64(point.Timestamp),
		point.Price,
		point.Volume,
	}

	rb.index = (rb.index + 1) % rb.capacity

	// Update size (never exceeds capacity)
	if rb.size < rb.capacity {
		rb.size++
	}
}

// -----------------------------------------------------------------------------

// GetLatest returns n latest records in chronological order
func (rb *RingBuffer) GetLatest(n int) []models.MPricePoint {
	if rb.size == 0 || n <= 0 {
		return []models.MPricePoint{}
	}

	count := n
	if n > rb.size {
		count = rb.size
	}

	result := make([]models.MPricePoint, count)

	// Latest data is at index-1
	startIdx := (rb.index - count + rb.capacity) % rb.capacity

	for i := 0; i < count; i++ {
		idx := (startIdx + i) % rb.capacity
		result[i] = rb.toPoint(rb.data[idx])
	}

	return result
}

// -----------------------------------------------------------------------------

// GetAll returns all data in insertion order (oldest to newest)
func (rb *RingBuffer) GetAll() []models.MPricePoint {
	if rb.size == 0 {
		return []models.MPricePoint{}
	}

	result := make([]models.MPricePoint, rb.size)

	// Oldest element: at current index on wrap-around, else at 0
	var startIdx int
	if rb.size == rb.capacity {
		startIdx = rb.index
	} else {
		startIdx = 0
	}

	for i := 0; i < rb.size; i++ {
		idx := (startIdx + i) % rb.capacity
		result[i] = rb.toPoint(rb.data[idx])
	}

	return result
}

// -----------------------------------------------------------------------------

// GetSeries returns parallel price/volume arrays in chronological order.
// This is the shape the indicator functions consume.
func (rb *RingBuffer) GetSeries() ([]float64, []float64) {
	if rb.size == 0 {
		return []float64{}, []float64{}
	}

	prices := make([]float64, rb.size)
	volumes := make([]float64, rb.size)

	var startIdx int
	if rb.size == rb.capacity {
		startIdx = rb.index
	} else {
		startIdx = 0
	}

	for i := 0; i < rb.size; i++ {
		row := rb.data[(startIdx+i)%rb.capacity]
		prices[i] = row[models.RB_IDX_PRICE]
		volumes[i] = row[models.RB_IDX_VOLUME]
	}

	return prices, volumes
}

// -----------------------------------------------------------------------------

func (rb *RingBuffer) toPoint(row [models.RB_NUM_FEATURES]float64) models.MPricePoint {
	return models.MPricePoint{
		Symbol:    rb.symbol,
		Timestamp: int64(row[models.RB_IDX_TIMESTAMP]),
		Price:     row[models.RB_IDX_PRICE],
		Volume:    row[models.RB_IDX_VOLUME],
	}
}

// -----------------------------------------------------------------------------

// Size returns current number of elements
func (rb *RingBuffer) Size() int {
	return rb.size
}

// -----------------------------------------------------------------------------

// Capacity returns buffer capacity (fixed)
func (rb *RingBuffer) Capacity() int {
	return rb.capacity
}

// -----------------------------------------------------------------------------

// IsFull returns whether buffer is full
func (rb *RingBuffer) IsFull() bool {
	return rb.size == rb.capacity
}

// -----------------------------------------------------------------------------

// Clear resets the buffer
func (rb *RingBuffer) Clear() {
	rb.index = 0
	rb.size = 0
}
