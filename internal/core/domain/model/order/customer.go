package order

import "shop/internal/pkg/errs"

// Customer is the buyer identity attached to an order. An order with a
// non-empty organization name belongs to an organizational (B2B) buyer,
// which drives invoice type and net payment terms.
type Customer struct {
	name         string
	email        string
	phone        string
	organization string
}

// NewCustomer creates a buyer identity. Name and email are required;
// phone and organization are optional.
func NewCustomer(name, email, phone, organization string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}
	if email == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer email")
	}

	return Customer{
		name:         name,
		email:        email,
		phone:        phone,
		organization: organization,
	}, nil
}

// Name returns the buyer's full name.
func (c Customer) Name() string {
	return c.name
}

// Email returns the buyer's email address.
func (c Customer) Email() string {
	return c.email
}

// Phone returns the buyer's phone number, possibly empty.
func (c Customer) Phone() string {
	return c.phone
}

// Organization returns the buyer's organization name, empty for
// individual buyers.
func (c Customer) Organization() string {
	return c.organization
}

// IsOrganization reports whether the buyer is an organizational (B2B) one.
func (c Customer) IsOrganization() bool {
	return c.organization != ""
}
