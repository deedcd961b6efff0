package entity

// Address is a saved shipping address. At most one address of a user is the
// default; the backend enforces that, the storefront only reads the flag.
type Address struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

// DefaultCountry is applied when an address form leaves the country empty.
const DefaultCountry = "India"

// AddressFields are the user-editable parts of an address.
type AddressFields struct {
	Name      string `json:"name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"required,min=7,max=15"`
	Street    string `json:"street" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Pincode   string `json:"pincode" validate:"required,numeric,min=4,max=10"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

// Normalize fills defaults the form may omit.
func (f AddressFields) Normalize() AddressFields {
	if f.Country == "" {
		f.Country = DefaultCountry
	}

	return f
}

// FindAddress returns the address with id from list.
func FindAddress(list []Address, id string) (Address, bool) {
	for _, addr := range list {
		if addr.ID == id {
			return addr, true
		}
	}

	return Address{}, false
}

// SelectDefault picks the address checkout starts with: the one flagged default,
// otherwise the first one. ok is false for an empty list.
func SelectDefault(list []Address) (addr Address, ok bool) {
	for _, candidate := range list {
		if candidate.IsDefault {
			return candidate, true
		}
	}
	if len(list) == 0 {
		return Address{}, false
	}

	return list[0], true
}
