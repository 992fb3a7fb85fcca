package customer

import "customers-be/internal/address"

type Customer struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// CustomerDetail is a customer together with every address it owns.
type CustomerDetail struct {
	Customer
	Addresses []*address.Address `json:"addresses"`
}

type CustomerInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type ListParams struct {
	Page   int
	Limit  int
	Search string
	SortBy string
	Order  string
}

type ListResult struct {
	Customers  []*Customer
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
