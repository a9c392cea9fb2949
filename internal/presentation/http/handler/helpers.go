package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/enum"
)

// GetEmployeeID extracts the authenticated employee's ID from the Gin context
func GetEmployeeID(c *gin.Context) *uuid.UUID {
	value, exists := c.Get("employee_id")
	if !exists {
		return nil
	}
	employeeID, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}
	return &employeeID
}

// GetEmployeeRole extracts the authenticated employee's role from the Gin context
func GetEmployeeRole(c *gin.Context) enum.Role {
	value, exists := c.Get("employee_role")
	if !exists {
		return ""
	}
	role, ok := value.(enum.Role)
	if !ok {
		return ""
	}
	return role
}
