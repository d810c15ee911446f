package ticket

import (
	"sort"

	"github.com/tcapp/mobile-ticket-api/internal/model"
)

// BuildSeatList maps seat records to their wire shape, ordered
// ascending by the stored seat number.  The sort is stable so seats
// sharing a number keep their original relative order; no seats are
// dropped or deduplicated.
func BuildSeatList(seats []model.Seat) []SeatView {
	sorted := make([]model.Seat, len(seats))
	copy(sorted, seats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SeatNo < sorted[j].SeatNo
	})

	out := make([]SeatView, 0, len(sorted))
	for _, s := range sorted {
		out = append(out, SeatView{
			SeatNumber:   s.SeatNo,
			KensyuName:   s.KensyuName,
			WaribikiName: s.WaribikiName,
			KaiinNo:      s.KaiinNo,
		})
	}
	return out
}
