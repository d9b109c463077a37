package carousel

import (
	"reflect"
	"sync/atomic"
	"testing"
	"time"
)

func TestCarousel_Wraparound(t *testing.T) {
	c := New(4, 3)
	if got := c.Next(); got != 0 {
		t.Errorf("Next() from last = %d, want 0", got)
	}
	if got := c.Prev(); got != 3 {
		t.Errorf("Prev() from 0 = %d, want 3", got)
	}
}

func TestCarousel_GoClamps(t *testing.T) {
	tests := []struct {
		size, target, want int
	}{
		{5, 2, 2},
		{5, -1, 0},
		{5, 9, 4},
		{0, 3, 0},
	}
	for _, tt := range tests {
		c := New(tt.size, 0)
		if got := c.Go(tt.target); got != tt.want {
			t.Errorf("size %d Go(%d) = %d, want %d", tt.size, tt.target, got, tt.want)
		}
	}
}

func TestCarousel_Empty(t *testing.T) {
	c := New(0, 0)
	if c.Next() != 0 || c.Prev() != 0 {
		t.Error("empty carousel should stay at 0")
	}
}

func TestCarousel_Apply(t *testing.T) {
	c := New(3, 0)
	steps := []struct {
		action string
		want   int
		ok     bool
	}{
		{ActionPrev, 2, true},
		{"ArrowRight", 0, true},
		{ActionLast, 2, true},
		{"Home", 0, true},
		{"jump", 0, false},
	}
	for _, s := range steps {
		got, ok := c.Apply(s.action)
		if got != s.want || ok != s.ok {
			t.Errorf("Apply(%q) = %d,%v want %d,%v", s.action, got, ok, s.want, s.ok)
		}
	}
}

func TestLoop(t *testing.T) {
	got := Loop([]string{"a", "b"})
	if !reflect.DeepEqual(got, []string{"a", "b", "a", "b"}) {
		t.Errorf("Loop() = %v", got)
	}
	if len(Loop([]int{})) != 0 {
		t.Error("Loop of empty should be empty")
	}
}

func TestTicker_TickDirection(t *testing.T) {
	tk := NewTicker(3, time.Hour)

	if s, ok := tk.Tick(); !ok || s.Index != 1 {
		t.Fatalf("first tick = %+v, %v", s, ok)
	}

	tk.SetDirection(Backward)
	tk.Tick()
	if s, _ := tk.Tick(); s.Index != 2 {
		t.Errorf("backward wrap expected index 2, got %d", s.Index)
	}
}

func TestTicker_StartStop(t *testing.T) {
	tk := NewTicker(2, 5*time.Millisecond)
	var ticks atomic.Int32
	tk.OnTick(func(State) { ticks.Add(1) })

	tk.Start()
	tk.Start()
	deadline := time.Now().Add(time.Second)
	for ticks.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	tk.Stop()
	tk.Stop()

	if ticks.Load() < 2 {
		t.Fatalf("expected at least 2 ticks, got %d", ticks.Load())
	}
	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	if ticks.Load() != after {
		t.Error("ticker kept running after Stop")
	}
	if tk.State().Running {
		t.Error("state should report not running")
	}
}

func TestTicker_OnEmptyFiresUntilResized(t *testing.T) {
	tk := NewTicker(0, 5*time.Millisecond)
	var empties, ticks atomic.Int32
	tk.OnEmpty(func() {
		if empties.Add(1) == 2 {
			tk.Resize(2)
		}
	})
	tk.OnTick(func(State) { ticks.Add(1) })

	tk.Start()
	deadline := time.Now().Add(time.Second)
	for ticks.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	tk.Stop()

	if empties.Load() != 2 {
		t.Errorf("expected 2 empty callbacks before resize, got %d", empties.Load())
	}
	if ticks.Load() == 0 {
		t.Error("ticker should advance once it has slides")
	}
}

func TestTicker_Resize(t *testing.T) {
	tk := NewTicker(5, time.Hour)
	tk.Tick()
	tk.Tick()
	tk.Tick()
	tk.Resize(2)
	if tk.State().Index != 0 {
		t.Errorf("index out of range after resize should reset, got %d", tk.State().Index)
	}
}
