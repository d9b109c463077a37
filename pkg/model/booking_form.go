package model

// BookingForm is the transient state of the public booking wizard. It is never stored.
type BookingForm struct {
	TourID          string `json:"tour_id"`
	Date            string `json:"date"`
	People          int    `json:"people"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests"`
}

type Review struct {
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Title  string  `json:"title"`
	Text   string  `json:"text"`
	Date   string  `json:"date"`
}
