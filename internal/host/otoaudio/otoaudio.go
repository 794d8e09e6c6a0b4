// Package otoaudio implements host.AudioPlayer on top of oto/v3,
// following the Context/Player/io.Reader wiring used by the pack's
// chiptune sound backend: one oto.Context at a fixed sample rate,
// one oto.Player per channel, each fed by a small io.Reader that
// streams a loaded sample or the single music track as float32 PCM.
package otoaudio

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Channels is the VM's fixed sound channel count, per section 6.2.2.
const Channels = 4

// sampleRate is the oto context's fixed output rate; per-sound
// frequency bytes scale playback speed by resampling into this rate
// rather than reopening the context, since oto/v3 contexts cannot be
// retuned after creation.
const sampleRate = 22050

// Player drives the VM's four sound channels and one music track
// through a single oto context.
type Player struct {
	ctx *oto.Context

	mu       sync.Mutex
	channels [Channels]*channelPlayer
	music    *channelPlayer
}

// New opens an oto context and returns a Player backed by it. The
// caller must not use the Player until ready has fired; New blocks
// until it does, matching the pack's NewOtoPlayer helper.
func New() (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	return &Player{ctx: ctx}, nil
}

// PlaySound implements host.AudioPlayer: it starts resource playing
// on channel at freq, scaled to volume in [0, 63] per section 6.2.2.
func (p *Player) PlaySound(channel uint8, resource []byte, freq, volume uint8) {
	if int(channel) >= Channels {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channels[channel] != nil {
		p.channels[channel].Close()
	}
	src := newPCMSource(resource, int(freq), volume)
	cp := newChannelPlayer(p.ctx, src)
	p.channels[channel] = cp
	cp.Start()
}

// StopChannel implements host.AudioPlayer.
func (p *Player) StopChannel(channel uint8) {
	if int(channel) >= Channels {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channels[channel] != nil {
		p.channels[channel].Close()
		p.channels[channel] = nil
	}
}

// PlayMusic implements host.AudioPlayer. offset selects the starting
// pattern within resource; this port treats the whole resource as one
// continuous sample starting at that byte offset; the original
// tracker format is not decoded.
func (p *Player) PlayMusic(resource []byte, delay uint16, offset uint8) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music != nil {
		p.music.Close()
	}
	start := int(offset)
	if start > len(resource) {
		start = len(resource)
	}
	src := newPCMSource(resource[start:], musicFreqForDelay(delay), 63)
	p.music = newChannelPlayer(p.ctx, src)
	p.music.Start()
}

// UpdateMusicDelay implements host.AudioPlayer by retuning the
// currently playing music track's sample source.
func (p *Player) UpdateMusicDelay(delay uint16) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.music != nil {
		p.music.src.setFreq(musicFreqForDelay(delay))
	}
}

// StopMusic implements host.AudioPlayer.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.music != nil {
		p.music.Close()
		p.music = nil
	}
}

// StopAll implements host.AudioPlayer, stopping every channel and the
// music track, per ControlResources id 0's contract.
func (p *Player) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.channels {
		if p.channels[i] != nil {
			p.channels[i].Close()
			p.channels[i] = nil
		}
	}
	if p.music != nil {
		p.music.Close()
		p.music = nil
	}
}

// musicFreqForDelay converts the tracker-style delay value (ticks
// between rows) into an approximate sample playback rate.
func musicFreqForDelay(delay uint16) int {
	if delay == 0 {
		return sampleRate
	}
	return 7159092 / (int(delay) * 2)
}
