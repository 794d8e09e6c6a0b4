package otoaudio

import (
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// channelPlayer pairs an oto.Player with the pcmSource feeding it, so
// Close can stop both in one place.
type channelPlayer struct {
	player *oto.Player
	src    *pcmSource
}

func newChannelPlayer(ctx *oto.Context, src *pcmSource) *channelPlayer {
	return &channelPlayer{
		player: ctx.NewPlayer(src),
		src:    src,
	}
}

func (c *channelPlayer) Start() {
	c.player.Play()
}

func (c *channelPlayer) Close() {
	c.player.Close()
}

// pcmSource streams a loaded sample or music resource as
// oto.FormatFloat32LE PCM, resampling from its native freq to the
// context's fixed sampleRate by nearest-neighbor selection and
// scaling amplitude by a 0-63 volume, matching section 6.2.2's sound
// parameters. Once the resource is exhausted it streams silence
// rather than stopping, since oto/v3 treats a Read returning io.EOF
// as the end of playback.
type pcmSource struct {
	mu     sync.Mutex
	data   []byte
	freq   int
	volume uint8
	pos    float64
}

func newPCMSource(data []byte, freq int, volume uint8) *pcmSource {
	if freq <= 0 {
		freq = sampleRate
	}
	return &pcmSource{data: data, freq: freq, volume: volume}
}

func (s *pcmSource) setFreq(freq int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if freq <= 0 {
		freq = sampleRate
	}
	s.freq = freq
}

// Read implements io.Reader, producing 4-byte float32LE frames.
func (s *pcmSource) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	step := float64(s.freq) / float64(sampleRate)
	n := len(p) / 4
	scale := float32(s.volume) / 63

	for i := 0; i < n; i++ {
		var sample float32
		idx := int(s.pos)
		if idx < len(s.data) {
			sample = (float32(s.data[idx]) - 128) / 128 * scale
			s.pos += step
		}
		putFloat32LE(p[i*4:i*4+4], sample)
	}
	return n * 4, nil
}

func putFloat32LE(b []byte, f float32) {
	bits := math.Float32bits(f)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}
