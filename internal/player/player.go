// Package player simulates playback progress for the current song. No audio
// is produced; the position advances one second per Tick.
package player

import "fmt"

const (
	DefaultDuration = 240
	DefaultVolume   = 80
	SkipSeconds     = 10
)

// Player is the transport state.
type Player struct {
	Duration int
	Position int
	Playing  bool
	Volume   int
	Muted    bool
	Repeat   bool
	Shuffle  bool
}

// New returns a stopped player at the start of a track.
func New(duration int) Player {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return Player{Duration: duration, Volume: DefaultVolume}
}

// Toggle flips between playing and paused.
func (p *Player) Toggle() {
	p.Playing = !p.Playing
}

// Tick advances playback by a second. At the end of the track it rewinds
// when Repeat is set and stops otherwise. It reports whether the player is
// still playing.
func (p *Player) Tick() bool {
	if !p.Playing {
		return false
	}
	if p.Position >= p.Duration {
		if p.Repeat {
			p.Position = 0
			return true
		}
		p.Position = p.Duration
		p.Playing = false
		return false
	}
	p.Position++
	return true
}

// Seek jumps to seconds, clamped to the track.
func (p *Player) Seek(seconds int) {
	p.Position = clamp(seconds, 0, p.Duration)
}

// SkipForward moves ahead SkipSeconds.
func (p *Player) SkipForward() {
	p.Seek(p.Position + SkipSeconds)
}

// SkipBackward moves back SkipSeconds.
func (p *Player) SkipBackward() {
	p.Seek(p.Position - SkipSeconds)
}

// SetVolume sets the volume in [0,100]. Zero mutes.
func (p *Player) SetVolume(v int) {
	p.Volume = clamp(v, 0, 100)
	p.Muted = p.Volume == 0
}

// ToggleMute flips the mute flag.
func (p *Player) ToggleMute() {
	p.Muted = !p.Muted
}

// EffectiveVolume is zero while muted.
func (p Player) EffectiveVolume() int {
	if p.Muted {
		return 0
	}
	return p.Volume
}

// Progress is the played fraction in [0,1].
func (p Player) Progress() float64 {
	if p.Duration <= 0 {
		return 0
	}
	return float64(p.Position) / float64(p.Duration)
}

// FormatTime renders seconds as m:ss.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
