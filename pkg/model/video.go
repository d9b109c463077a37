package model

import "time"

type Video struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Title        string    `json:"title" bson:"title" validate:"required,min=2,max=120"`
	Description  string    `json:"description" bson:"description" validate:"max=2000"`
	VideoURL     *string   `json:"video_url" bson:"video_url"`
	ThumbnailURL *string   `json:"thumbnail_url" bson:"thumbnail_url"`
	Active       bool      `json:"active" bson:"active"`
	SortOrder    int       `json:"sort_order" bson:"sort_order" validate:"gte=0"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

func (v *Video) FileSlots() []FileSlot {
	return []FileSlot{
		VideoSlot("video_url", &v.VideoURL),
		ImageSlot("thumbnail_url", &v.ThumbnailURL),
	}
}
