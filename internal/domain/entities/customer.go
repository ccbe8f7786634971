package entities

// Customer is the order's customer reference.
//
// Only CustomerType matters to this service: channel rules may restrict a
// payment channel to specific customer types (e.g. wholesale only).

type Customer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CustomerType string `json:"customer_type"`
}
