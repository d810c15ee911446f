package ticket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcapp/mobile-ticket-api/internal/model"
)

// fakeSource is an in-memory DataSource for assembler tests.
type fakeSource struct {
	movies      map[string]*model.Movie
	schedules   map[string]*model.TheaterSchedule
	concessions map[string][]model.Concession
}

func (f *fakeSource) FetchActiveMovie(_ context.Context, code string) (*model.Movie, error) {
	return f.movies[code], nil
}

func (f *fakeSource) FetchTheaterSchedule(_ context.Context, code string) (*model.TheaterSchedule, error) {
	return f.schedules[code], nil
}

func (f *fakeSource) FetchConcessions(_ context.Context, theaterCode string) ([]model.Concession, error) {
	return f.concessions[theaterCode], nil
}

func testTicket(txn, movieCode string) model.MovieTicket {
	return model.MovieTicket{
		TransactionID:       txn,
		UserID:              "u-100",
		ManagementMovieCode: "MG-" + movieCode,
		MovieCode:           movieCode,
		TheaterCode:         "T01",
		TheaterName:         "シネマズ新宿",
		ShowingDate:         time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		ShowingStartTime:    "18:30",
		ShowingEndTime:      "20:45",
		PurchaseNumber:      "K-" + txn,
	}
}

func TestBuildBeforeList(t *testing.T) {
	ds := &fakeSource{
		movies: map[string]*model.Movie{
			"M001": {MovieCode: "M001", Title: "Night Train", TitleJA: "夜行列車", ThumbnailURL: "https://img.example.com/m001.jpg"},
		},
		concessions: map[string][]model.Concession{
			"T01": {
				{ConcessionID: "C1", ConcessionName: "スクリーン横売店", MobileOrderURL: "https://order.example.com/c1", CautionText: "上映30分前まで"},
				{ConcessionID: "C2", ConcessionName: "ロビー売店", MobileOrderURL: "https://order.example.com/c2"},
			},
		},
	}

	views, err := BuildBeforeList(context.Background(), ds, []model.MovieTicket{testTicket("TXN-1", "M001")})
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, "TXN-1", v.TransactionID)
	assert.Equal(t, "Night Train", v.Title)
	assert.Equal(t, "夜行列車", v.TitleJA)
	assert.Equal(t, "2026-09-12", v.ShowingDate)
	assert.Equal(t, "https://img.example.com/m001.jpg", v.ThumbnailURL)
	assert.True(t, v.ExistsMovieData)
	require.Len(t, v.MobileOrder.Concession, 2)
	assert.Equal(t, "C1", v.MobileOrder.Concession[0].ConcessionID)
	assert.Equal(t, "上映30分前まで", v.MobileOrder.Concession[0].CautionText)
}

func TestBuildBeforeListFailsWholeBatchOnUnresolvedTitle(t *testing.T) {
	ds := &fakeSource{
		movies: map[string]*model.Movie{
			"M001": {MovieCode: "M001", Title: "Night Train", TitleJA: "夜行列車"},
			// M002 missing: its ticket cannot resolve a title.
		},
	}

	views, err := BuildBeforeList(context.Background(), ds, []model.MovieTicket{
		testTicket("TXN-1", "M001"),
		testTicket("TXN-2", "M002"),
	})
	assert.ErrorIs(t, err, ErrTitleUnresolved)
	assert.Nil(t, views, "no partial list on the before path")
}

func TestBuildBeforeListEmptyMobileOrderSerializesAsObject(t *testing.T) {
	ds := &fakeSource{
		movies: map[string]*model.Movie{
			"M001": {MovieCode: "M001", Title: "Night Train", TitleJA: "夜行列車"},
		},
	}

	views, err := BuildBeforeList(context.Background(), ds, []model.MovieTicket{testTicket("TXN-1", "M001")})
	require.NoError(t, err)
	require.Len(t, views, 1)

	raw, err := json.Marshal(views[0].MobileOrder)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw), "zero concessions must render an empty object")
}

func TestBuildAfterListSkipsUnresolvedAndKeepsOrder(t *testing.T) {
	withMovie := func(txn string) model.MovieTicket {
		mt := testTicket(txn, "M001")
		mt.Movie = &model.Movie{MovieCode: "M001", Title: "Night Train", TitleJA: "夜行列車"}
		return mt
	}
	noMovie := testTicket("TXN-GONE", "M404") // movie record deleted

	views := BuildAfterList([]model.MovieTicket{withMovie("TXN-1"), noMovie, withMovie("TXN-3")})

	require.Len(t, views, 2)
	assert.Equal(t, "TXN-1", views[0].TransactionID)
	assert.Equal(t, "TXN-3", views[1].TransactionID)
	for _, v := range views {
		assert.Empty(t, v.MobileOrder.Concession, "after list never carries mobile order")
	}
}

func TestBuildAfterListEmptyInput(t *testing.T) {
	assert.Empty(t, BuildAfterList(nil))
}

func TestBuildDetail(t *testing.T) {
	ds := &fakeSource{
		movies: map[string]*model.Movie{
			"M001": {MovieCode: "M001", Title: "Night Train", TitleJA: "夜行列車", ThumbnailURL: "https://img.example.com/m001.jpg"},
		},
		schedules: map[string]*model.TheaterSchedule{
			"M001": {MovieCode: "M001", TheaterCode: "T01", SubtitlesDubbingCode: "1"},
		},
	}
	lookup := func(code string) (string, bool) {
		if code == "1" {
			return "字幕版", true
		}
		return "", false
	}

	mt := testTicket("TXN-1", "M001")
	mt.FacilityCode = "SCREEN X PREMIUM THEATER"
	mt.FacilityName = "SCREEN X PREMIUM THEATER"
	mt.ScreenName = "スクリーン7"
	mt.PhoneNumber = "03-0000-0000"
	mt.PurchaseQRCode = "QR-TXN-1"
	mt.Seats = []model.Seat{
		{SeatNo: "5"}, {SeatNo: "1"}, {SeatNo: "3"},
	}

	view, err := BuildDetail(context.Background(), ds, lookup, &mt)
	require.NoError(t, err)

	assert.Equal(t, "Night Train", view.Title)
	assert.Equal(t, "夜行列車", view.TitleJA)
	assert.Equal(t, "スクリーン7", view.ScreenNameJA)
	assert.Nil(t, view.ScreenNameEN)
	assert.True(t, view.ExistsMovieData)

	require.NotNil(t, view.SubtitlesDubbingCode)
	assert.Equal(t, "1", *view.SubtitlesDubbingCode)
	require.NotNil(t, view.SubtitlesDubbingName)
	assert.Equal(t, "字幕版", *view.SubtitlesDubbingName)

	// Legacy facility pair normalized, exactly one entry.
	require.Len(t, view.FacilityList, 1)
	assert.Equal(t, FacilityView{FacilityCode: "SCREEN X", FacilityName: "SCREEN X"}, view.FacilityList[0])

	require.Len(t, view.SeatList, 3)
	assert.Equal(t, "1", view.SeatList[0].SeatNumber)
	assert.Equal(t, "3", view.SeatList[1].SeatNumber)
	assert.Equal(t, "5", view.SeatList[2].SeatNumber)
}

func TestBuildDetailFacilityListEmptyWhenPairIncomplete(t *testing.T) {
	ds := &fakeSource{
		movies: map[string]*model.Movie{
			"M001": {MovieCode: "M001", Title: "Night Train", TitleJA: "夜行列車"},
		},
	}

	mt := testTicket("TXN-1", "M001")
	mt.FacilityCode = "IMAX" // name missing

	view, err := BuildDetail(context.Background(), ds, nil, &mt)
	require.NoError(t, err)
	assert.Empty(t, view.FacilityList)
	assert.Nil(t, view.SubtitlesDubbingCode, "no schedule, no variant info")
	assert.Nil(t, view.SubtitlesDubbingName)
}

func TestBuildDetailUnresolvedTitle(t *testing.T) {
	ds := &fakeSource{} // no movie record at all

	mt := testTicket("TXN-1", "M404")
	view, err := BuildDetail(context.Background(), ds, nil, &mt)
	assert.ErrorIs(t, err, ErrTitleUnresolved)
	assert.Nil(t, view)
}

func TestBuildDetailUnknownSubtitlesCodeLeavesNameUnset(t *testing.T) {
	ds := &fakeSource{
		movies: map[string]*model.Movie{
			"M001": {MovieCode: "M001", Title: "Night Train", TitleJA: "夜行列車"},
		},
		schedules: map[string]*model.TheaterSchedule{
			"M001": {MovieCode: "M001", TheaterCode: "T01", SubtitlesDubbingCode: "9"},
		},
	}
	lookup := func(string) (string, bool) { return "", false }

	mt := testTicket("TXN-1", "M001")
	view, err := BuildDetail(context.Background(), ds, lookup, &mt)
	require.NoError(t, err)
	require.NotNil(t, view.SubtitlesDubbingCode)
	assert.Equal(t, "9", *view.SubtitlesDubbingCode)
	assert.Nil(t, view.SubtitlesDubbingName)
}
