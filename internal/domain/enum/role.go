package enum

import "database/sql/driver"

// Role represents an employee's access level
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleCashier Role = "Cashier"
)

// Valid reports whether the value is one of the known roles
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCashier
}

func (r Role) String() string {
	return string(r)
}

func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *Role) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	}
	return nil
}
