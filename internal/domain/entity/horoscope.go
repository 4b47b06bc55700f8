package entity

import "strings"

// Horoscope is one sign's reading for one KST day.
// Content has the form "reading|map|job".
type Horoscope struct {
	Date    string `json:"date"`
	Sign    string `json:"sign"`
	Content string `json:"content"`
}

// Parts splits Content into the reading and its lucky map and job.
// Missing segments come back empty.
func (h *Horoscope) Parts() (text, mapName, job string) {
	parts := strings.SplitN(h.Content, "|", 3)
	text = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		mapName = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		job = strings.TrimSpace(parts[2])
	}
	return text, mapName, job
}
