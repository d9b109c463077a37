package model

import "time"

// HeroSlide is one frame of the home page hero rotation.
type HeroSlide struct {
	TourID string `json:"tour_id"`
	Title  string `json:"title"`
	Image  string `json:"image"`
}

type HeroState struct {
	Slide     *HeroSlide `json:"slide"`
	Index     int        `json:"index"`
	Total     int        `json:"total"`
	Direction int        `json:"direction"`
	Paused    bool       `json:"paused"`
}

// HeroControl is one viewer's hero position plus the action they took.
type HeroControl struct {
	Index  int    `json:"index"`
	Paused bool   `json:"paused"`
	Action string `json:"action"`
}

type HomePage struct {
	Settings *SiteSettings    `json:"settings"`
	Hero     HeroState        `json:"hero"`
	Marquee  []ExperienceCard `json:"marquee"`
	Videos   []*Video         `json:"videos"`
}

type ContactInfo struct {
	Settings    *SiteSettings `json:"settings"`
	WhatsAppURL string        `json:"whatsapp_url"`
	QRCodeURL   string        `json:"qr_code_url"`
}

type Policy struct {
	Lang     string `json:"lang"`
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

type Dashboard struct {
	Counts      map[string]int64 `json:"counts"`
	Unavailable []string         `json:"unavailable,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
}
