package model

type MeetingPoint struct {
	ID           string `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Title        string `json:"title" bson:"title" validate:"required,min=2,max=120"`
	Zone         string `json:"zone" bson:"zone" validate:"max=80"`
	Instructions string `json:"instructions" bson:"instructions" validate:"max=2000"`
	MapURL       string `json:"map_url" bson:"map_url" validate:"omitempty,url"`
	Active       bool   `json:"active" bson:"active"`
}
