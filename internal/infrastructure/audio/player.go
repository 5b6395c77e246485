// Package audio plays the simulation's sound cues and level music.
//
// The Player works without a sound device: until Init succeeds, cues are
// counted and track changes remembered, but nothing reaches the mixer.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/younwookim/dodgeball/internal/application/system"
	"github.com/younwookim/dodgeball/internal/infrastructure/config"
)

const defaultSampleRate = 44100

// Player mixes one-shot cues and a looping music track. Master, music and
// sound volumes multiply. It is driven from the game goroutine only.
type Player struct {
	cfg   *config.AudioConfig
	rate  beep.SampleRate
	mixer *beep.Mixer
	music *beep.Ctrl
	track string
	muted bool
	live  bool
	// sink is set once something pulls samples from the mixer.
	sink bool

	played map[system.Cue]int
}

// NewPlayer creates a silent player. Call Init to attach the speaker.
func NewPlayer(cfg *config.AudioConfig) *Player {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = defaultSampleRate
	}
	return &Player{
		cfg:    cfg,
		rate:   rate,
		mixer:  &beep.Mixer{},
		played: make(map[system.Cue]int),
	}
}

// Init opens the speaker. On error the player stays silent and usable.
func (p *Player) Init() error {
	if p.live {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.live = true
	p.sink = true
	return nil
}

// Live reports whether a speaker is attached.
func (p *Player) Live() bool {
	return p.live
}

// Handle reacts to one simulation event.
func (p *Player) Handle(ev system.Event) {
	switch e := ev.(type) {
	case system.SoundEvent:
		p.PlaySound(e.Cue)
	case system.MusicEvent:
		p.PlayMusic(e.Track)
	}
}

// PlaySound starts a one-shot cue. Muted or silent cues are counted but
// not played.
func (p *Player) PlaySound(cue system.Cue) {
	p.played[cue]++
	if p.muted || !p.sink {
		return
	}

	s := cueStreamer(cue, p.rate)
	if s == nil {
		return
	}
	p.add(newVolume(s, p.cfg.MasterVolume*p.cfg.SoundVolume))
}

// PlayMusic switches to track. Asking for the current track keeps it
// playing without a restart.
func (p *Player) PlayMusic(track string) {
	if track == p.track && p.music != nil {
		return
	}
	p.StopMusic()

	ctrl := &beep.Ctrl{
		Streamer: newVolume(newArpeggio(trackNotes(track), 180*time.Millisecond, p.rate), p.cfg.MasterVolume*p.cfg.MusicVolume),
		Paused:   p.muted,
	}
	p.music = ctrl
	p.track = track
	p.add(ctrl)
}

// StopMusic ends the current track.
func (p *Player) StopMusic() {
	if p.music == nil {
		return
	}
	p.locked(func() {
		// A Ctrl without a streamer drains, so the mixer drops it.
		p.music.Streamer = nil
	})
	p.music = nil
	p.track = ""
}

// SetMuted silences or restores all output. Music keeps its position.
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
	if p.music != nil {
		p.locked(func() {
			p.music.Paused = muted
		})
	}
}

// Muted reports whether output is muted.
func (p *Player) Muted() bool {
	return p.muted
}

// Track returns the name of the playing track, or "".
func (p *Player) Track() string {
	return p.track
}

// Played returns how many times cue was requested.
func (p *Player) Played(cue system.Cue) int {
	return p.played[cue]
}

// Close stops all sounds.
func (p *Player) Close() {
	p.locked(func() {
		p.mixer.Clear()
	})
	p.music = nil
	p.track = ""
}

func (p *Player) add(s beep.Streamer) {
	if !p.sink {
		return
	}
	p.locked(func() {
		p.mixer.Add(s)
	})
}

// locked runs f with the speaker paused when one is attached.
func (p *Player) locked(f func()) {
	if p.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	f()
}
