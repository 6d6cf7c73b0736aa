// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking is successfully
// committed.  It carries enough of the booking snapshot for downstream
// consumers to log or notify without reading the ledger.
type BookingConfirmedEvent struct {
	BookingID    string `json:"booking_id"`
	ConcertTitle string `json:"concert_title"`
	Date         string `json:"date"`
	TimeSlot     string `json:"time_slot"`
	AreaCode     string `json:"area_code"`
	SeatNumbers  []int  `json:"seat_numbers"`
	TotalPrice   int    `json:"total_price"`
	CustomerName string `json:"customer_name"`
	ConfirmedAt  string `json:"confirmed_at"`
}
