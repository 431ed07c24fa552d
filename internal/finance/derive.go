// Package finance holds the pure derivation formulas for the financial
// fields stored on Vine products and inventory items. All derivation happens
// here, server-side, at record creation time; client-supplied derived values
// are never trusted.
package finance

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Fixed rates. The tax rate applies to every Vine product regardless of any
// display-only rate the client keeps in local settings.
var (
	taxRate        = decimal.New(25, -2)  // 0.25
	listingMarkup  = decimal.New(110, -2) // 1.10 — flat 10% over sale price
	minPriceMarkup = decimal.New(120, -2) // 1.20 — flat 20% over cost basis

	// DefaultDiscountPercent applies when a caller omits the discount.
	DefaultDiscountPercent = decimal.NewFromInt(30)

	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

var (
	// ErrNegativeAmount rejects negative prices, costs and ETVs before any
	// derivation runs.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrDiscountOutOfRange rejects discounts outside [0, 100].
	ErrDiscountOutOfRange = errors.New("discount percent must be between 0 and 100")
)

// TaxLiability returns the tax owed for receiving a Vine product:
// etv * 0.25.
func TaxLiability(etv decimal.Decimal) (decimal.Decimal, error) {
	if etv.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return etv.Mul(taxRate), nil
}

// SalePrice returns the discounted resale price:
// originalPrice * (1 - discountPercent/100).
func SalePrice(originalPrice, discountPercent decimal.Decimal) (decimal.Decimal, error) {
	if originalPrice.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		return decimal.Zero, ErrDiscountOutOfRange
	}
	return originalPrice.Mul(one.Sub(discountPercent.Div(hundred))), nil
}

// ListingPrice marks the sale price up by a flat 10%.
func ListingPrice(salePrice decimal.Decimal) (decimal.Decimal, error) {
	if salePrice.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return salePrice.Mul(listingMarkup), nil
}

// MinAcceptablePrice is the floor below which a sale loses money:
// costBasis * 1.2.
func MinAcceptablePrice(costBasis decimal.Decimal) (decimal.Decimal, error) {
	if costBasis.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return costBasis.Mul(minPriceMarkup), nil
}

// ItemPrices bundles the three derived inventory prices.
type ItemPrices struct {
	Sale          decimal.Decimal
	Listing       decimal.Decimal
	MinAcceptable decimal.Decimal
}

// DeriveItemPrices computes every derived price for a new inventory item.
// A nil discountPercent means "use the default".
//
// profit_margin and net_profit are deliberately NOT derived here: no formula
// for them is specified yet, so those fields stay unset until one is.
func DeriveItemPrices(originalPrice, costBasis decimal.Decimal, discountPercent *decimal.Decimal) (ItemPrices, error) {
	discount := DefaultDiscountPercent
	if discountPercent != nil {
		discount = *discountPercent
	}

	sale, err := SalePrice(originalPrice, discount)
	if err != nil {
		return ItemPrices{}, err
	}
	listing, err := ListingPrice(sale)
	if err != nil {
		return ItemPrices{}, err
	}
	minAcceptable, err := MinAcceptablePrice(costBasis)
	if err != nil {
		return ItemPrices{}, err
	}

	return ItemPrices{
		Sale:          sale,
		Listing:       listing,
		MinAcceptable: minAcceptable,
	}, nil
}
