package request

// CreateEmployeeRequest represents a create employee request
type CreateEmployeeRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	FullName string `json:"full_name" binding:"required,min=2,max=255"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=Admin Cashier"`
}

// UpdateEmployeeRequest represents an update employee request
type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=2,max=255"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=Admin Cashier"`
}
