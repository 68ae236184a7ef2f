package state

import "github.com/lyriclang/lyriclang/internal/videos"

type VideoStore interface {
	Key() string
	Status() Status
	Err() error
	Carousel() *videos.Carousel
	Request(key string, seq uint64)
	Apply(key string, seq uint64, items []videos.Video, err error) bool
	Clear()
}

type videoStore struct {
	slot
	carousel *videos.Carousel
}

func NewVideoStore() VideoStore {
	return &videoStore{}
}

func (v *videoStore) Key() string {
	return v.key
}

func (v *videoStore) Status() Status {
	return v.status
}

func (v *videoStore) Err() error {
	return v.err
}

// Carousel is nil until suggestions arrive.
func (v *videoStore) Carousel() *videos.Carousel {
	return v.carousel
}

func (v *videoStore) Request(key string, seq uint64) {
	v.request(key, seq)
	v.carousel = nil
}

func (v *videoStore) Apply(key string, seq uint64, items []videos.Video, err error) bool {
	if !v.accepts(key, seq) {
		return false
	}
	v.settle(err)
	if err == nil {
		v.carousel = videos.NewCarousel(items)
	}
	return true
}

func (v *videoStore) Clear() {
	v.reset()
	v.carousel = nil
}
