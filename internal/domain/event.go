package domain

// Event is a disaster/relief activity volunteers can register for.
type Event struct {
	ID          int32  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	// Capacity is the maximum number of approved volunteers.
	// Zero or negative means unlimited.
	Capacity  int32  `json:"capacity"`
	PhotoURL  string `json:"photo_url,omitempty"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

// EventUpdate carries the editable fields of an event. Nil pointers
// leave the stored value untouched.
type EventUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Category    *string `json:"category"`
	Date        *string `json:"date"`
	Capacity    *int32  `json:"capacity"`
	PhotoURL    *string `json:"photo_url"`
}
