package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DiscountType is how a coupon reduces the price.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// IsValid checks if the DiscountType is a known value.
func (t DiscountType) IsValid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

// Coupon is a discount code redeemable within its validity window.
type Coupon struct {
	ID                  uuid.UUID    `json:"id"`
	Code                string       `json:"code"`
	Description         string       `json:"description,omitempty"`
	Type                DiscountType `json:"type"`
	DiscountValue       float64      `json:"discountValue"`
	UsageLimitPerUser   int          `json:"usageLimitPerUser"`
	StartDate           time.Time    `json:"startDate"`
	ExpireDate          time.Time    `json:"expireDate"`
	IsActive            bool         `json:"isActive"`
	ApplicableCourseIDs []string     `json:"applicableCourseIds"`
	CreatedAt           time.Time    `json:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt"`
}

// NormalizeCouponCode trims and uppercases a coupon code so lookups are case-insensitive.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CouponRejection is the reason a coupon cannot be redeemed right now.
type CouponRejection string

const (
	CouponNotFound    CouponRejection = "COUPON_NOT_FOUND"
	CouponInactive    CouponRejection = "COUPON_INACTIVE"
	CouponNotYetValid CouponRejection = "COUPON_NOT_YET_VALID"
	CouponExpired     CouponRejection = "COUPON_EXPIRED"
)

// Redeemability reports why the coupon can't be used at now, or "" if it can.
// Checks run in a fixed order: inactive, not yet valid, expired.
func (c *Coupon) Redeemability(now time.Time) CouponRejection {
	switch {
	case !c.IsActive:
		return CouponInactive
	case now.Before(c.StartDate):
		return CouponNotYetValid
	case now.After(c.ExpireDate):
		return CouponExpired
	default:
		return ""
	}
}

// CouponFilter is the whitelisted exact-match filter for listing coupons.
type CouponFilter struct {
	IsActive *bool
	Type     DiscountType
	Code     string
}
