package main

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 48000

// SoundBank owns the audio context and one player per effect. The
// tones are synthesized at startup instead of decoded from files.
type SoundBank struct {
	ctx     *audio.Context
	players map[string]*audio.Player
	muted   bool
}

func NewSoundBank() *SoundBank {
	sb := &SoundBank{
		ctx:     audio.NewContext(sampleRate),
		players: make(map[string]*audio.Player),
	}
	for name, t := range map[string]struct {
		freq float64
		d    time.Duration
	}{
		"bounce": {220, 60 * time.Millisecond},
		"hit":    {440, 60 * time.Millisecond},
		"score":  {330, 250 * time.Millisecond},
		"win":    {660, 600 * time.Millisecond},
	} {
		sb.players[name] = sb.ctx.NewPlayerFromBytes(tone(t.freq, t.d))
	}
	return sb
}

// Play restarts the named sound. Safe on a nil bank so headless tests
// can run the update step without an audio device.
func (sb *SoundBank) Play(name string) {
	if sb == nil || sb.muted {
		return
	}
	p, ok := sb.players[name]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("sound %s: %v", name, err)
		return
	}
	p.Play()
}

func (sb *SoundBank) SetMuted(m bool) {
	if sb != nil {
		sb.muted = m
	}
}

func (sb *SoundBank) Muted() bool {
	return sb != nil && sb.muted
}

// tone renders a sine burst with a linear fade-out as 16-bit little
// endian stereo PCM, the format NewPlayerFromBytes expects.
func tone(freq float64, d time.Duration) []byte {
	n := int(sampleRate * d.Seconds())
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * fade * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[4*i:], uint16(v))
		binary.LittleEndian.PutUint16(buf[4*i+2:], uint16(v))
	}
	return buf
}
