package model

import "time"

type GalleryRecord struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Titulo        string    `json:"titulo" bson:"titulo" validate:"required,min=2,max=120"`
	Descripcion   string    `json:"descripcion" bson:"descripcion" validate:"max=2000"`
	ImagenPortada *string   `json:"imagen_portada" bson:"imagen_portada"`
	Imagen2       *string   `json:"imagen2" bson:"imagen2"`
	Imagen3       *string   `json:"imagen3" bson:"imagen3"`
	Imagen4       *string   `json:"imagen4" bson:"imagen4"`
	Imagen5       *string   `json:"imagen5" bson:"imagen5"`
	Categoria     string    `json:"categoria" bson:"categoria" validate:"max=40"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

func (r *GalleryRecord) FileSlots() []FileSlot {
	return []FileSlot{
		ImageSlot("imagen_portada", &r.ImagenPortada),
		ImageSlot("imagen2", &r.Imagen2),
		ImageSlot("imagen3", &r.Imagen3),
		ImageSlot("imagen4", &r.Imagen4),
		ImageSlot("imagen5", &r.Imagen5),
	}
}

type GalleryItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Cover       string   `json:"cover"`
	Images      []string `json:"images"`
	Category    Category `json:"category"`
}

// LightboxView is the state of the gallery viewer after an action.
type LightboxView struct {
	ItemID string `json:"item_id"`
	Index  int    `json:"index"`
	Image  string `json:"image"`
	Total  int    `json:"total"`
}
