package carousel

// Carousel is a current-index cursor over n items with wraparound.
type Carousel struct {
	index int
	size  int
}

func New(size, start int) *Carousel {
	c := &Carousel{size: size}
	c.Go(start)
	return c
}

func (c *Carousel) Index() int { return c.index }
func (c *Carousel) Size() int  { return c.size }

func (c *Carousel) Next() int {
	if c.size == 0 {
		return 0
	}
	c.index = (c.index + 1) % c.size
	return c.index
}

func (c *Carousel) Prev() int {
	if c.size == 0 {
		return 0
	}
	c.index = (c.index - 1 + c.size) % c.size
	return c.index
}

// Go jumps to i, clamped to the valid range.
func (c *Carousel) Go(i int) int {
	switch {
	case c.size == 0 || i < 0:
		c.index = 0
	case i >= c.size:
		c.index = c.size - 1
	default:
		c.index = i
	}
	return c.index
}

func (c *Carousel) First() int { return c.Go(0) }
func (c *Carousel) Last() int  { return c.Go(c.size - 1) }

const (
	ActionNext  = "next"
	ActionPrev  = "prev"
	ActionFirst = "first"
	ActionLast  = "last"
)

// Apply maps a viewer action (arrow keys, on-screen buttons) onto the cursor.
// Unknown actions leave the index unchanged and report false.
func (c *Carousel) Apply(action string) (int, bool) {
	switch action {
	case ActionNext, "right", "ArrowRight":
		return c.Next(), true
	case ActionPrev, "left", "ArrowLeft":
		return c.Prev(), true
	case ActionFirst, "Home":
		return c.First(), true
	case ActionLast, "End":
		return c.Last(), true
	case "":
		return c.index, true
	}
	return c.index, false
}

// Loop returns items followed by a copy of themselves, the track shape used
// by the packages marquee.
func Loop[T any](items []T) []T {
	out := make([]T, 0, len(items)*2)
	out = append(out, items...)
	return append(out, items...)
}
