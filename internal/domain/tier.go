package domain

import "fmt"

type Tier string

const (
	TierPlatinum Tier = "platinum"
	TierGold     Tier = "gold"
	TierSilver   Tier = "silver"
	TierBronze   Tier = "bronze"
)

const (
	SeatRows    = 10
	SeatColumns = 10
	WingSize    = 5
)

// TierBand assigns a tier to the rows FirstRow..LastRow (inclusive, zero based).
type TierBand struct {
	Tier     Tier
	FirstRow int
	LastRow  int
}

// TierLayout maps row indexes to pricing tiers. It is the single source of the
// row-to-tier boundaries, shared by the seat map and the purchase price check.
type TierLayout []TierBand

var DefaultTierLayout = TierLayout{
	{Tier: TierPlatinum, FirstRow: 0, LastRow: 1},
	{Tier: TierGold, FirstRow: 2, LastRow: 4},
	{Tier: TierSilver, FirstRow: 5, LastRow: 7},
	{Tier: TierBronze, FirstRow: 8, LastRow: 9},
}

func (l TierLayout) TierForRow(row int) (Tier, error) {
	for _, band := range l {
		if row >= band.FirstRow && row <= band.LastRow {
			return band.Tier, nil
		}
	}

	return "", fmt.Errorf("%w: row %d has no tier", ErrUnknownSeat, row)
}

// TierForSeat resolves the tier of a seat label such as "F3".
func (l TierLayout) TierForSeat(label string) (Tier, error) {
	row, _, err := ParseSeatLabel(label)
	if err != nil {
		return "", err
	}

	return l.TierForRow(row)
}

// RowLetter returns the letter of a zero based row index ("A" for 0).
func RowLetter(row int) string {
	return string(rune('A' + row))
}

// SeatLabel formats a zero based row index and a one based column number.
func SeatLabel(row, col int) string {
	return fmt.Sprintf("%s%d", RowLetter(row), col)
}

// ParseSeatLabel splits a label into its zero based row index and one based column.
func ParseSeatLabel(label string) (row, col int, err error) {
	if len(label) < 2 || len(label) > 3 {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownSeat, label)
	}

	row = int(label[0] - 'A')
	if row < 0 || row >= SeatRows {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownSeat, label)
	}

	for _, ch := range label[1:] {
		if ch < '0' || ch > '9' {
			return 0, 0, fmt.Errorf("%w: %q", ErrUnknownSeat, label)
		}
		col = col*10 + int(ch-'0')
	}

	if col < 1 || col > SeatColumns || label[1] == '0' {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownSeat, label)
	}

	return row, col, nil
}
