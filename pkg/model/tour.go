package model

import "time"

// TourRecord is the stored shape of a row in the paquetes collection.
type TourRecord struct {
	ID               string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Nombre           string    `json:"nombre" bson:"nombre" validate:"required,min=2,max=120"`
	Descripcion      string    `json:"descripcion" bson:"descripcion" validate:"max=5000"`
	PrecioPorPersona *float64  `json:"precio_por_persona" bson:"precio_por_persona" validate:"omitempty,gte=0"`
	Price            *float64  `json:"price" bson:"price" validate:"omitempty,gte=0"`
	Imagen1          *string   `json:"imagen1" bson:"imagen1"`
	Imagen2          *string   `json:"imagen2" bson:"imagen2"`
	Imagen3          *string   `json:"imagen3" bson:"imagen3"`
	Imagen4          *string   `json:"imagen4" bson:"imagen4"`
	Imagen5          *string   `json:"imagen5" bson:"imagen5"`
	Imagen6          *string   `json:"imagen6" bson:"imagen6"`
	Imagen7          *string   `json:"imagen7" bson:"imagen7"`
	Imagen8          *string   `json:"imagen8" bson:"imagen8"`
	Imagen9          *string   `json:"imagen9" bson:"imagen9"`
	Imagen10         *string   `json:"imagen10" bson:"imagen10"`
	Duracion         string    `json:"duracion" bson:"duracion" validate:"max=60"`
	Incluye          *string   `json:"incluye" bson:"incluye"`
	Categoria        string    `json:"categoria" bson:"categoria" validate:"max=40"`
	MaxPersonas      int       `json:"max_personas" bson:"max_personas" validate:"gte=0,lte=200"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

func (r *TourRecord) FileSlots() []FileSlot {
	return []FileSlot{
		ImageSlot("imagen1", &r.Imagen1),
		ImageSlot("imagen2", &r.Imagen2),
		ImageSlot("imagen3", &r.Imagen3),
		ImageSlot("imagen4", &r.Imagen4),
		ImageSlot("imagen5", &r.Imagen5),
		ImageSlot("imagen6", &r.Imagen6),
		ImageSlot("imagen7", &r.Imagen7),
		ImageSlot("imagen8", &r.Imagen8),
		ImageSlot("imagen9", &r.Imagen9),
		ImageSlot("imagen10", &r.Imagen10),
	}
}

// Tour is the view model served to the public pages.
type Tour struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DescriptionHTML string   `json:"description_html"`
	Price           float64  `json:"price"`
	Image           string   `json:"image"`
	Images          []string `json:"images"`
	Duration        string   `json:"duration"`
	Included        []string `json:"included,omitempty"`
	Category        Category `json:"category"`
	MaxPeople       int      `json:"max_people"`
}

// ExperienceCard is the compact shape used by the home page marquee.
type ExperienceCard struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Image    string   `json:"image"`
	Price    float64  `json:"price"`
	Duration string   `json:"duration"`
	Category Category `json:"category"`
}

type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}
