package address

type Address struct {
	ID             int64  `json:"id"`
	CustomerID     int64  `json:"customerId"`
	AddressDetails string `json:"addressDetails"`
	City           string `json:"city"`
	State          string `json:"state"`
	PinCode        string `json:"pinCode"`
}

// AddressInput carries the four content fields. The owner is never part of
// it: it is fixed at creation from the path and cannot change afterwards.
type AddressInput struct {
	AddressDetails string `json:"addressDetails"`
	City           string `json:"city"`
	State          string `json:"state"`
	PinCode        string `json:"pinCode"`
}
