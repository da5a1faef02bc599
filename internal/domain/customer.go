package domain

// CustomerCode identifies a customer by its short alphanumeric code
// (e.g. "ALFKI"). The code is the identity, not a surrogate key.
type CustomerCode string

func (c CustomerCode) String() string { return string(c) }

// Customer carries the code plus the denormalized company name.
type Customer struct {
	Code        CustomerCode
	CompanyName string
}
