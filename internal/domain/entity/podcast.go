package entity

import "path"

// Podcast is one generated radio segment. AudioPath is the public path
// (e.g. /audio/podcast_2026-01-18_1.wav) served by the web server.
type Podcast struct {
	Date      string `json:"date"`
	ID        int    `json:"id"`
	Script    string `json:"script"`
	Voice     string `json:"voice"`
	AudioPath string `json:"audio_path"`
}

// FileName is the wav file name inside the audio directory.
func (p *Podcast) FileName() string {
	return path.Base(p.AudioPath)
}
