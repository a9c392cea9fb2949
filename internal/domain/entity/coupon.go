package entity

// Coupon is a future hook: the table is migrated but no checkout logic
// consumes coupons yet.
type Coupon struct {
	Code string `gorm:"size:100;primary_key" json:"code"`
	Used bool   `gorm:"not null;default:false" json:"used"`
}

// TableName returns the table name for the Coupon model
func (Coupon) TableName() string {
	return "coupons"
}
