package domain

import (
	"github.com/shopspring/decimal"
)

type Seat struct {
	Label     string
	Row       string
	RowIndex  int
	Column    int
	Tier      Tier
	Price     decimal.Decimal
	Available bool
}

type SeatRow struct {
	Letter string
	Index  int
	Tier   Tier
	Price  decimal.Decimal
	Left   []Seat
	Right  []Seat
}

type SeatMap struct {
	ScreeningID int
	Rows        []SeatRow
	index       map[string]seatPos
}

type seatPos struct {
	row   int
	right bool
	col   int
}

// BuildSeatMap lays out the full grid of a screening. Seats whose labels are in
// taken are marked unavailable; labels outside the grid are ignored.
func BuildSeatMap(screening Screening, layout TierLayout, taken []string) (*SeatMap, error) {
	if err := screening.Validate(layout); err != nil {
		return nil, err
	}

	takenSet := make(map[string]bool, len(taken))
	for _, label := range taken {
		takenSet[label] = true
	}

	seatMap := &SeatMap{
		ScreeningID: screening.ID,
		Rows:        make([]SeatRow, 0, SeatRows),
		index:       make(map[string]seatPos, SeatRows*SeatColumns),
	}

	for r := 0; r < SeatRows; r++ {
		tier, err := layout.TierForRow(r)
		if err != nil {
			return nil, err
		}

		price, err := screening.Prices.PriceFor(tier)
		if err != nil {
			return nil, err
		}

		row := SeatRow{
			Letter: RowLetter(r),
			Index:  r,
			Tier:   tier,
			Price:  price,
			Left:   make([]Seat, 0, WingSize),
			Right:  make([]Seat, 0, SeatColumns-WingSize),
		}

		for c := 1; c <= SeatColumns; c++ {
			label := SeatLabel(r, c)
			seat := Seat{
				Label:     label,
				Row:       row.Letter,
				RowIndex:  r,
				Column:    c,
				Tier:      tier,
				Price:     price,
				Available: !takenSet[label],
			}

			// column numbering stays global across both wings
			if c <= WingSize {
				seatMap.index[label] = seatPos{row: r, col: len(row.Left)}
				row.Left = append(row.Left, seat)
			} else {
				seatMap.index[label] = seatPos{row: r, right: true, col: len(row.Right)}
				row.Right = append(row.Right, seat)
			}
		}

		seatMap.Rows = append(seatMap.Rows, row)
	}

	return seatMap, nil
}

// Seat looks a seat up by its label.
func (m *SeatMap) Seat(label string) (Seat, bool) {
	seat := m.seatRef(label)
	if seat == nil {
		return Seat{}, false
	}

	return *seat, true
}

// MarkTaken flags a seat as unavailable after the backend confirmed a booking for it.
func (m *SeatMap) MarkTaken(label string) {
	if seat := m.seatRef(label); seat != nil {
		seat.Available = false
	}
}

// Seats returns every seat in row order, left wing before right wing.
func (m *SeatMap) Seats() []Seat {
	seats := make([]Seat, 0, SeatRows*SeatColumns)

	for _, row := range m.Rows {
		seats = append(seats, row.Left...)
		seats = append(seats, row.Right...)
	}

	return seats
}

// TakenLabels returns the labels of all unavailable seats in row order.
func (m *SeatMap) TakenLabels() []string {
	var labels []string

	for _, seat := range m.Seats() {
		if !seat.Available {
			labels = append(labels, seat.Label)
		}
	}

	return labels
}

func (m *SeatMap) seatRef(label string) *Seat {
	pos, ok := m.index[label]
	if !ok {
		return nil
	}

	row := &m.Rows[pos.row]
	if pos.right {
		return &row.Right[pos.col]
	}

	return &row.Left[pos.col]
}
