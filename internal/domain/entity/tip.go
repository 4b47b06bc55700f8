package entity

import "time"

// Tip is a community-written gameplay tip managed from the admin web.
type Tip struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Keyword   string    `json:"keyword"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
