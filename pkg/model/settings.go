package model

import "time"

// SiteSettings is the singleton row of the admin collection.
type SiteSettings struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	BusinessName string    `json:"business_name" bson:"business_name" validate:"required,min=2,max=120"`
	LogoURL      *string   `json:"logo_url" bson:"logo_url"`
	Phone        string    `json:"phone" bson:"phone" validate:"max=30"`
	WhatsApp     string    `json:"whatsapp" bson:"whatsapp" validate:"max=30"`
	Email        string    `json:"email" bson:"email" validate:"omitempty,email"`
	Address      string    `json:"address" bson:"address" validate:"max=300"`
	Facebook     string    `json:"facebook" bson:"facebook" validate:"omitempty,url"`
	Instagram    string    `json:"instagram" bson:"instagram" validate:"omitempty,url"`
	TripAdvisor  string    `json:"tripadvisor" bson:"tripadvisor" validate:"omitempty,url"`
	TikTok       string    `json:"tiktok" bson:"tiktok" validate:"omitempty,url"`
	HeroVideoURL *string   `json:"hero_video_url" bson:"hero_video_url"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

func (s *SiteSettings) FileSlots() []FileSlot {
	return []FileSlot{
		ImageSlot("logo_url", &s.LogoURL),
		VideoSlot("hero_video_url", &s.HeroVideoURL),
	}
}

type Admin struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Name         string    `json:"name" bson:"name"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
