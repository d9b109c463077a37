package carousel

import (
	"sync"
	"time"
)

const (
	Forward  = 1
	Backward = -1
)

// State is a snapshot of a Ticker.
type State struct {
	Index     int  `json:"index"`
	Size      int  `json:"size"`
	Direction int  `json:"direction"`
	Running   bool `json:"running"`
}

// Ticker rotates an index on a fixed interval. Start schedules a single
// goroutine; Stop cancels it and is safe to call more than once.
type Ticker struct {
	mu        sync.Mutex
	interval  time.Duration
	index     int
	size      int
	direction int
	running   bool
	stop      chan struct{}
	done      chan struct{}
	onTick    func(State)
	onEmpty   func()
}

func NewTicker(size int, interval time.Duration) *Ticker {
	return &Ticker{
		interval:  interval,
		size:      size,
		direction: Forward,
	}
}

// OnTick registers a callback invoked after every automatic advance.
func (t *Ticker) OnTick(fn func(State)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onTick = fn
}

// OnEmpty registers a callback invoked on every interval while size is 0.
func (t *Ticker) OnEmpty(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onEmpty = fn
}

func (t *Ticker) Start() {
	t.mu.Lock()
	if t.running || t.interval <= 0 {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	stop, done := t.stop, t.done
	t.mu.Unlock()

	go t.loop(stop, done)
}

func (t *Ticker) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	timer := time.NewTicker(t.interval)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-timer.C:
			state, advanced := t.Tick()
			t.mu.Lock()
			onTick, onEmpty := t.onTick, t.onEmpty
			t.mu.Unlock()
			switch {
			case advanced && onTick != nil:
				onTick(state)
			case state.Size == 0 && onEmpty != nil:
				onEmpty()
			}
		}
	}
}

// Stop cancels the scheduled callback and waits for the loop to exit.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	close(t.stop)
	done := t.done
	t.mu.Unlock()

	<-done
}

// Tick advances one step in the current direction. An empty ticker stays put.
func (t *Ticker) Tick() (State, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.size == 0 {
		return t.stateLocked(), false
	}
	t.index = (t.index + t.direction + t.size) % t.size
	return t.stateLocked(), true
}

func (t *Ticker) SetDirection(direction int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if direction < 0 {
		t.direction = Backward
	} else {
		t.direction = Forward
	}
}

// Resize changes the slide count, keeping the index in range.
func (t *Ticker) Resize(size int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.size = size
	if size == 0 || t.index >= size {
		t.index = 0
	}
}

func (t *Ticker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stateLocked()
}

func (t *Ticker) stateLocked() State {
	return State{
		Index:     t.index,
		Size:      t.size,
		Direction: t.direction,
		Running:   t.running,
	}
}
