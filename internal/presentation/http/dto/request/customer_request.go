package request

// CreateCustomerRequest represents a create customer request
type CreateCustomerRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,min=7,max=50"`
}

// AddCreditRequest represents a store credit top-up
type AddCreditRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
