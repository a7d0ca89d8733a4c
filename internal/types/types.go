// README: Common value objects shared across modules.
package types

// ID is an opaque entity identifier (orders, riders, vendors).
type ID string

type Money struct {
	Amount   int64
	Currency string
}

// Address is an Indian-style postal address; Pincode is the location
// code the distance estimator works from.
type Address struct {
	Street  string
	Area    string
	City    string
	State   string
	Pincode string
}
