// Package noaudio implements host.AudioPlayer as a no-op, for
// headless runs and tests, mirroring the role mappers.Dummy plays as
// a stand-in collaborator elsewhere in the pack.
package noaudio

// Player discards every call it receives.
type Player struct{}

// New returns a Player that makes no sound.
func New() *Player {
	return &Player{}
}

func (Player) PlaySound(channel uint8, resource []byte, freq, volume uint8) {}
func (Player) StopChannel(channel uint8)                                    {}
func (Player) PlayMusic(resource []byte, delay uint16, offset uint8)        {}
func (Player) UpdateMusicDelay(delay uint16)                                {}
func (Player) StopMusic()                                                   {}
func (Player) StopAll()                                                     {}
