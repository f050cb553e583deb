//go:build ci

package sound

type SoundManager struct{}

func NewSoundManager(dir string) *SoundManager {
	return &SoundManager{}
}

func (sm *SoundManager) Init() error {
	return nil
}

func (sm *SoundManager) Replay(name string) error {
	return nil
}

func (sm *SoundManager) Loaded(name string) bool {
	return false
}

func (sm *SoundManager) Close() {
	// No-op
}
