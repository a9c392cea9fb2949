package enum

import "database/sql/driver"

// ItemType distinguishes stock that is sold from stock that is rented out
type ItemType string

const (
	ItemTypeSale   ItemType = "Sale"
	ItemTypeRental ItemType = "Rental"
)

// Valid reports whether the value is one of the known item types
func (t ItemType) Valid() bool {
	return t == ItemTypeSale || t == ItemTypeRental
}

func (t ItemType) String() string {
	return string(t)
}

func (t ItemType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *ItemType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*t = ItemType(v)
	case []byte:
		*t = ItemType(v)
	}
	return nil
}
