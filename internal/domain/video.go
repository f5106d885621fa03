package domain

import "time"

// ResidentialVideo - видеообзор ЖК из коллекции residential_videos
type ResidentialVideo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// Promotion - акция, привязанная к ЖК
type Promotion struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	ExpiresAt *time.Time `json:"expires_at"`
}

const DefaultPromotionTitle = "Акция"
