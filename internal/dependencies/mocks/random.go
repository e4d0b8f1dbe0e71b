package mocks

import "fmt"

// MockRandom returns queued results so tests control dice and room codes.
// When a queue is empty it falls back to a deterministic default rather than
// failing, so tests only queue the values they care about.
type MockRandom struct {
	intnQueue   []int
	dieQueue    []int
	stringQueue []string
}

func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// QueueIntn queues results for Intn calls
func (r *MockRandom) QueueIntn(values ...int) {
	r.intnQueue = append(r.intnQueue, values...)
}

// QueueDice queues die face values for Die calls
func (r *MockRandom) QueueDice(values ...int) {
	r.dieQueue = append(r.dieQueue, values...)
}

// QueueString queues results for String calls
func (r *MockRandom) QueueString(values ...string) {
	r.stringQueue = append(r.stringQueue, values...)
}

func (r *MockRandom) Intn(n int) int {
	if len(r.intnQueue) == 0 {
		return 0
	}
	v := r.intnQueue[0]
	r.intnQueue = r.intnQueue[1:]
	if v >= n {
		panic(fmt.Sprintf("queued Intn value %d out of range for n=%d", v, n))
	}
	return v
}

func (r *MockRandom) Die(sides int) int {
	if len(r.dieQueue) == 0 {
		return 1
	}
	v := r.dieQueue[0]
	r.dieQueue = r.dieQueue[1:]
	if v < 1 || v > sides {
		panic(fmt.Sprintf("queued die value %d out of range for %d sides", v, sides))
	}
	return v
}

func (r *MockRandom) String(length int, alphabet string) string {
	if len(r.stringQueue) == 0 {
		out := make([]byte, length)
		for i := range out {
			out[i] = alphabet[0]
		}
		return string(out)
	}
	v := r.stringQueue[0]
	r.stringQueue = r.stringQueue[1:]
	return v
}
