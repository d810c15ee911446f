package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcapp/mobile-ticket-api/internal/model"
)

func TestBuildSeatListSortsBySeatNumber(t *testing.T) {
	seats := []model.Seat{
		{SeatNo: "5", KensyuName: "一般"},
		{SeatNo: "1", KensyuName: "一般", WaribikiName: "first"},
		{SeatNo: "3", KensyuName: "小人"},
		{SeatNo: "1", KensyuName: "一般", WaribikiName: "second"},
	}

	got := BuildSeatList(seats)
	require.Len(t, got, 4)

	assert.Equal(t, []string{"1", "1", "3", "5"},
		[]string{got[0].SeatNumber, got[1].SeatNumber, got[2].SeatNumber, got[3].SeatNumber})
	// Stable sort: the two "1" seats keep their original relative order.
	assert.Equal(t, "first", got[0].WaribikiName)
	assert.Equal(t, "second", got[1].WaribikiName)

	// Input order untouched.
	assert.Equal(t, "5", seats[0].SeatNo)
}

func TestBuildSeatListMapsFields(t *testing.T) {
	seats := []model.Seat{
		{SeatNo: "D-12", KensyuName: "シネマイレージ会員", WaribikiName: "会員割引", KaiinNo: "900123"},
	}
	got := BuildSeatList(seats)
	require.Len(t, got, 1)
	assert.Equal(t, SeatView{
		SeatNumber:   "D-12",
		KensyuName:   "シネマイレージ会員",
		WaribikiName: "会員割引",
		KaiinNo:      "900123",
	}, got[0])
}

func TestBuildSeatListEmpty(t *testing.T) {
	assert.Empty(t, BuildSeatList(nil))
}
