package model

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type PrivateTourRecord struct {
	ID             string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name           string    `json:"name" bson:"name" validate:"required,min=2,max=120"`
	Description    string    `json:"description" bson:"description" validate:"max=5000"`
	Price1Person   *float64  `json:"price_1_person" bson:"price_1_person" validate:"omitempty,gte=0"`
	Price2Persons  *float64  `json:"price_2_persons" bson:"price_2_persons" validate:"omitempty,gte=0"`
	Price3Persons  *float64  `json:"price_3_persons" bson:"price_3_persons" validate:"omitempty,gte=0"`
	Price4Persons  *float64  `json:"price_4_persons" bson:"price_4_persons" validate:"omitempty,gte=0"`
	PriceChild     *float64  `json:"price_child" bson:"price_child" validate:"omitempty,gte=0"`
	Image1         *string   `json:"image1" bson:"image1"`
	Image2         *string   `json:"image2" bson:"image2"`
	Image3         *string   `json:"image3" bson:"image3"`
	WhatsIncluded  string    `json:"whats_included" bson:"whats_included" validate:"max=5000"`
	Notes          string    `json:"notes" bson:"notes" validate:"max=5000"`
	AvailableDays  []string  `json:"available_days" bson:"available_days" validate:"dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Activity1      string    `json:"activity1" bson:"activity1" validate:"max=500"`
	Activity2      string    `json:"activity2" bson:"activity2" validate:"max=500"`
	Activity3      string    `json:"activity3" bson:"activity3" validate:"max=500"`
	Activity4      string    `json:"activity4" bson:"activity4" validate:"max=500"`
	BookingOptions bool      `json:"booking_options" bson:"booking_options"`
	Active         bool      `json:"active" bson:"active"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

func (r *PrivateTourRecord) FileSlots() []FileSlot {
	return []FileSlot{
		ImageSlot("image1", &r.Image1),
		ImageSlot("image2", &r.Image2),
		ImageSlot("image3", &r.Image3),
	}
}

type PriceTiers struct {
	OnePerson    float64 `json:"one_person"`
	TwoPersons   float64 `json:"two_persons"`
	ThreePersons float64 `json:"three_persons"`
	FourPersons  float64 `json:"four_persons"`
	Child        float64 `json:"child"`
}

type PrivateTour struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Prices         PriceTiers `json:"prices"`
	Image          string     `json:"image"`
	Images         []string   `json:"images"`
	WhatsIncluded  []string   `json:"whats_included"`
	Notes          string     `json:"notes"`
	AvailableDays  []string   `json:"available_days"`
	Activities     []string   `json:"activities"`
	BookingOptions bool       `json:"booking_options"`
	Active         bool       `json:"active"`
}

// TourOption is a row of tour_additional_options. Price is flat per booking.
type TourOption struct {
	ID          string  `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name        string  `json:"name" bson:"name" validate:"required,min=2,max=120"`
	Description string  `json:"description" bson:"description" validate:"max=1000"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
	Active      bool    `json:"active" bson:"active"`
	SortOrder   int     `json:"sort_order" bson:"sort_order" validate:"gte=0"`
}

type PrivateTourBooking struct {
	ID              string    `json:"id,omitempty" bson:"_id,omitempty"`
	PrivateTourID   string    `json:"private_tour_id" bson:"private_tour_id" validate:"required,mongodb"`
	PrivateTourName string    `json:"private_tour_name" bson:"private_tour_name"`
	FirstName       string    `json:"first_name" bson:"first_name" validate:"required,max=80"`
	LastName        string    `json:"last_name" bson:"last_name" validate:"required,max=80"`
	Email           string    `json:"email" bson:"email" validate:"required,email"`
	Phone           string    `json:"phone" bson:"phone" validate:"required,e164"`
	Country         string    `json:"country" bson:"country" validate:"max=80"`
	Adults          int       `json:"adults" bson:"adults" validate:"required,min=1,max=30"`
	Children        int       `json:"children" bson:"children" validate:"gte=0,max=30"`
	SelectedOptions []string  `json:"selected_options" bson:"selected_options" validate:"dive,mongodb"`
	TourDate        string    `json:"tour_date" bson:"tour_date" validate:"required,datetime=2006-01-02"`
	Hotel           string    `json:"hotel" bson:"hotel" validate:"max=200"`
	Comments        string    `json:"comments" bson:"comments" validate:"max=2000"`
	TotalPrice      float64   `json:"total_price" bson:"total_price"`
	Status          string    `json:"status" bson:"status" validate:"required,oneof=pending confirmed cancelled"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

type BookingConfirmation struct {
	Booking *PrivateTourBooking `json:"booking"`
	Token   string              `json:"token"`
	Path    string              `json:"confirmation_path"`
}

// BookingRequest is the public intake form for a private tour.
type BookingRequest struct {
	PrivateTourID   string   `json:"private_tour_id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Country         string   `json:"country"`
	Adults          int      `json:"adults"`
	Children        int      `json:"children"`
	SelectedOptions []string `json:"selected_options"`
	TourDate        string   `json:"tour_date"`
	Hotel           string   `json:"hotel"`
	Comments        string   `json:"comments"`
}

type QuoteLine struct {
	Label    string  `json:"label"`
	Quantity int     `json:"quantity"`
	Unit     float64 `json:"unit"`
	Amount   float64 `json:"amount"`
}

// Quote is the price breakdown of a private tour booking.
type Quote struct {
	PerPerson float64     `json:"per_person"`
	Lines     []QuoteLine `json:"lines"`
	Total     float64     `json:"total"`
}

// BookingReceipt is what the confirmation page and PDF show.
type BookingReceipt struct {
	Booking *PrivateTourBooking `json:"booking"`
	Options []TourOption        `json:"options"`
}
