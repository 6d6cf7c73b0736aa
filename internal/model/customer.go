package model

// Customer holds the billing details entered during a booking flow.
// All fields are plain text; validation happens at input time only and
// the core never re-validates them.
type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Suburb   string `json:"suburb"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
}

// IsEmpty reports whether no field has been filled in.
func (c Customer) IsEmpty() bool {
	return c == Customer{}
}
