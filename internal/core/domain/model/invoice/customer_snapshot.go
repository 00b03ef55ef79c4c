package invoice

import "shop/internal/core/domain/model/order"

// CustomerSnapshot is the buyer identity copied onto the invoice at
// generation time. It is never re-derived from the live buyer record:
// the invoice must read the same years later even if the account changes.
type CustomerSnapshot struct {
	name         string
	email        string
	phone        string
	address      string
	organization string
}

// SnapshotCustomer copies the buyer identity and shipping address from
// the order.
func SnapshotCustomer(o *order.Order) CustomerSnapshot {
	customer := o.Customer()
	return CustomerSnapshot{
		name:         customer.Name(),
		email:        customer.Email(),
		phone:        customer.Phone(),
		address:      o.ShippingAddress(),
		organization: customer.Organization(),
	}
}

// RestoreCustomerSnapshot reconstructs a snapshot from persistence.
func RestoreCustomerSnapshot(name, email, phone, address, organization string) CustomerSnapshot {
	return CustomerSnapshot{
		name:         name,
		email:        email,
		phone:        phone,
		address:      address,
		organization: organization,
	}
}

// Name returns the snapshotted buyer name.
func (s CustomerSnapshot) Name() string { return s.name }

// Email returns the snapshotted buyer email.
func (s CustomerSnapshot) Email() string { return s.email }

// Phone returns the snapshotted buyer phone.
func (s CustomerSnapshot) Phone() string { return s.phone }

// Address returns the snapshotted shipping address.
func (s CustomerSnapshot) Address() string { return s.address }

// Organization returns the snapshotted organization name, empty for
// individual buyers.
func (s CustomerSnapshot) Organization() string { return s.organization }
