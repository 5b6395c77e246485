package system

// Event is a fire-and-forget signal for collaborators outside the
// simulation (audio, HUD). The core never reads an event back.
type Event interface {
	isEvent()
}

// Cue names a sound effect.
type Cue string

const (
	CueCollision Cue = "collision"
	CueShoot     Cue = "shoot"
	CueExplosion Cue = "explosion"
	CuePowerUp   Cue = "powerup"
)

// Cues lists every sound cue.
func Cues() []Cue {
	return []Cue{CueCollision, CueShoot, CueExplosion, CuePowerUp}
}

// SoundEvent asks for a one-shot sound effect
type SoundEvent struct {
	Cue Cue
}

func (SoundEvent) isEvent() {}

// MusicEvent asks for the level's music track
type MusicEvent struct {
	Track string
}

func (MusicEvent) isEvent() {}

// EventBuffer collects events emitted during one tick.
type EventBuffer struct {
	events []Event
}

// Emit appends an event.
func (b *EventBuffer) Emit(e Event) {
	b.events = append(b.events, e)
}

// Sound is shorthand for Emit(SoundEvent{Cue: cue}).
func (b *EventBuffer) Sound(cue Cue) {
	b.Emit(SoundEvent{Cue: cue})
}

// Flush returns the collected events and empties the buffer.
func (b *EventBuffer) Flush() []Event {
	out := b.events
	b.events = nil
	return out
}
