package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Screening struct {
	ID         int
	MovieID    int
	MovieTitle string
	Venue      string
	ShowTime   time.Time
	Prices     TierPrices
}

// TierPrices holds the per-tier prices of a screening. Columns are nullable in
// storage so a missing price is detectable instead of silently becoming zero.
type TierPrices struct {
	Platinum decimal.NullDecimal
	Gold     decimal.NullDecimal
	Silver   decimal.NullDecimal
	Bronze   decimal.NullDecimal
}

func (p TierPrices) PriceFor(tier Tier) (decimal.Decimal, error) {
	var price decimal.NullDecimal

	switch tier {
	case TierPlatinum:
		price = p.Platinum
	case TierGold:
		price = p.Gold
	case TierSilver:
		price = p.Silver
	case TierBronze:
		price = p.Bronze
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown tier %q", ErrInvalidScreening, tier)
	}

	if !price.Valid {
		return decimal.Zero, fmt.Errorf("%w: missing %s price", ErrInvalidScreening, tier)
	}

	if price.Decimal.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative %s price", ErrInvalidScreening, tier)
	}

	return price.Decimal, nil
}

// Validate checks that every tier of the layout has a usable price.
func (s Screening) Validate(layout TierLayout) error {
	if s.ID < 1 {
		return fmt.Errorf("%w: missing screening id", ErrInvalidScreening)
	}

	for _, band := range layout {
		if _, err := s.Prices.PriceFor(band.Tier); err != nil {
			return err
		}
	}

	return nil
}

// SeatPrice resolves the authoritative price of a seat label for this screening.
func (s Screening) SeatPrice(layout TierLayout, label string) (decimal.Decimal, error) {
	tier, err := layout.TierForSeat(label)
	if err != nil {
		return decimal.Zero, err
	}

	return s.Prices.PriceFor(tier)
}

type ScreeningRepository interface {
	GetByID(ctx context.Context, id int) (*Screening, error)
}
