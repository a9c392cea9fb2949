package enum

import "database/sql/driver"

// TransactionType represents the kind of checkout being processed
type TransactionType string

const (
	TransactionTypeSale   TransactionType = "Sale"
	TransactionTypeRental TransactionType = "Rental"
	TransactionTypeReturn TransactionType = "Return"
)

// Valid reports whether the value is one of the known transaction types
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeSale, TransactionTypeRental, TransactionTypeReturn:
		return true
	}
	return false
}

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *TransactionType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*t = TransactionType(v)
	case []byte:
		*t = TransactionType(v)
	}
	return nil
}
