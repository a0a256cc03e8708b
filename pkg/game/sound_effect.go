package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundEffect 可重复播放的短音效
// 音量和开关取自 SettingsManager，每次播放时读取，设置修改后立即生效
type SoundEffect struct {
	player   *audio.Player
	settings *SettingsManager
}

// NewSoundEffect 创建音效
// settings 为 nil 时始终以满音量播放
func NewSoundEffect(player *audio.Player, settings *SettingsManager) *SoundEffect {
	return &SoundEffect{
		player:   player,
		settings: settings,
	}
}

// Play 从头播放音效
func (s *SoundEffect) Play() {
	if s == nil || s.player == nil {
		return
	}

	volume := 1.0
	if s.settings != nil {
		settings := s.settings.GetSettings()
		if !settings.SoundEnabled {
			return
		}
		volume = settings.SoundVolume
	}

	if err := s.player.Rewind(); err != nil {
		log.Printf("[SoundEffect] Warning: failed to rewind: %v", err)
		return
	}
	s.player.SetVolume(volume)
	s.player.Play()
}
