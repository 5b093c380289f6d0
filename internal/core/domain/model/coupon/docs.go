// Package coupon provides coupon catalog entries and the redemption recorded against an order.
//
// A Redemption snapshots the coupon code and minimum total at redemption time, so the
// order keeps displaying the discount it was placed with after the coupon is edited or deleted.
// The discount amount is always stored as a negative value.
package coupon
