package videos

// Carousel steps through suggestions, wrapping at both ends.
type Carousel struct {
	items []Video
	index int
}

// NewCarousel starts at the first video.
func NewCarousel(items []Video) *Carousel {
	return &Carousel{items: append([]Video(nil), items...)}
}

// Len is the number of videos.
func (c *Carousel) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Index is the position of the current video.
func (c *Carousel) Index() int {
	if c == nil {
		return 0
	}
	return c.index
}

// Items returns the videos in order.
func (c *Carousel) Items() []Video {
	if c == nil {
		return nil
	}
	return append([]Video(nil), c.items...)
}

// Current returns the selected video.
func (c *Carousel) Current() (Video, bool) {
	if c.Len() == 0 {
		return Video{}, false
	}
	return c.items[c.index], true
}

// Next advances, wrapping from last to first.
func (c *Carousel) Next() {
	if c.Len() == 0 {
		return
	}
	c.index = (c.index + 1) % len(c.items)
}

// Prev steps back, wrapping from first to last.
func (c *Carousel) Prev() {
	if c.Len() == 0 {
		return
	}
	c.index = (c.index - 1 + len(c.items)) % len(c.items)
}

// Select jumps to i when it is in range.
func (c *Carousel) Select(i int) bool {
	if i < 0 || i >= c.Len() {
		return false
	}
	c.index = i
	return true
}
