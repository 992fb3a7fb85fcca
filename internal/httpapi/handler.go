package httpapi

import (
	"net/http"

	"customers-be/internal/address"
	"customers-be/internal/customer"
	"customers-be/internal/utils"
)

type Handler struct {
	customers customer.Service
	addresses address.Service
}

func NewHandler(customers customer.Service, addresses address.Service) *Handler {
	return &Handler{customers: customers, addresses: addresses}
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var in customer.CustomerInput
	if err := decodeBody(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.customers.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, "Customer created successfully", c)
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := customer.ListParams{
		Page:   utils.IntOrDefault(q.Get("page"), customer.DefaultPage),
		Limit:  utils.IntOrDefault(q.Get("limit"), customer.DefaultLimit),
		Search: q.Get("search"),
		SortBy: q.Get("sortBy"),
		Order:  q.Get("order"),
	}

	res, err := h.customers.List(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, envelope{
		Message: "success",
		Data:    res.Customers,
		Pagination: &pagination{
			Page:       res.Page,
			Limit:      res.Limit,
			Total:      res.Total,
			TotalPages: res.TotalPages,
		},
	})
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.customers.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, "success", c)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in customer.CustomerInput
	if err := decodeBody(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.customers.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, "Customer updated successfully", c)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.customers.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, "Customer deleted successfully")
}

func (h *Handler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in address.AddressInput
	if err := decodeBody(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.addresses.Create(r.Context(), customerID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, "Address added successfully", a)
}

func (h *Handler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.addresses.List(r.Context(), customerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, "success", list)
}

func (h *Handler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	addressID, err := pathID(r, "addressId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in address.AddressInput
	if err := decodeBody(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.addresses.Update(r.Context(), addressID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, "Address updated successfully", a)
}

func (h *Handler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	addressID, err := pathID(r, "addressId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.addresses.Delete(r.Context(), addressID); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, "Address deleted successfully")
}
