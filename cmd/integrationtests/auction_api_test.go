package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func dataMap(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no object data: %v", resp)
	return data
}

func idOf(t *testing.T, resp map[string]any, key string) int64 {
	t.Helper()
	return int64(dataMap(t, resp)[key].(float64))
}

// Full auction lifecycle over HTTP
func TestAuctionLifecycle(t *testing.T) {
	env := SetupTestEnv(t)
	auctionID := env.startAuction(t, alice, 1, at(10, 0), at(11, 0), "100")

	resp, w := env.ExecuteRequestAndParse(t, carol, http.MethodGet, artworkPath(1)+"/auction/active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, dataMap(t, resp)["active"], "not active before start")

	_, w = env.makeOffer(t, carol, auctionID, "150")
	require.Equal(t, http.StatusBadRequest, w.Code, "bids before start are rejected")

	env.clock.Set(at(10, 5))

	resp, w = env.makeOffer(t, carol, auctionID, "150")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	carolOffer := idOf(t, resp, "offer_id")
	require.Equal(t, "SUBMITTED", dataMap(t, resp)["status"])

	resp, w = env.makeOffer(t, dave, auctionID, "150")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, resp["message"], "bid amount too low")

	resp, w = env.makeOffer(t, dave, auctionID, "160.25")
	require.Equal(t, http.StatusCreated, w.Code)
	daveOffer := idOf(t, resp, "offer_id")

	resp, w = env.makeOffer(t, alice, auctionID, "1000")
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, resp["message"], "owner cannot bid")

	resp, w = env.ExecuteRequestAndParse(t, bob, http.MethodGet, artworkPath(1)+"/auction/active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := dataMap(t, resp)["auction"].(map[string]any)
	require.Equal(t, "160.25", view["current_price"])
	require.Equal(t, 2.0, view["offer_count"])

	resp, w = env.ExecuteRequestAndParse(t, bob, http.MethodGet, auctionPath(auctionID)+"/offers/max", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "160.25", dataMap(t, resp)["max_amount"])

	_, w = env.ExecuteRequestAndParse(t, carol, http.MethodGet, auctionPath(auctionID)+"/offers", nil)
	require.Equal(t, http.StatusForbidden, w.Code, "only the owner lists offers")

	resp, w = env.ExecuteRequestAndParse(t, alice, http.MethodGet, auctionPath(auctionID)+"/offers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	offers := resp["data"].([]any)
	require.Len(t, offers, 2)
	require.Equal(t, float64(daveOffer), offers[0].(map[string]any)["offer_id"], "newest first")

	env.clock.Set(at(11, 1))

	resp, w = env.makeOffer(t, bob, auctionID, "500")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, resp["message"], "auction is not active")

	_, w = env.ExecuteRequestAndParse(t, carol, http.MethodPut, offerPath(daveOffer)+"/accept", nil)
	require.Equal(t, http.StatusForbidden, w.Code, "only the owner decides")

	resp, w = env.ExecuteRequestAndParse(t, alice, http.MethodPut, offerPath(daveOffer)+"/accept", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ACCEPTED", dataMap(t, resp)["status"])

	resp, w = env.ExecuteRequestAndParse(t, alice, http.MethodPut, offerPath(daveOffer)+"/reject", nil)
	require.Equal(t, http.StatusBadRequest, w.Code, "terminal offers stay terminal")
	require.Contains(t, resp["message"], "SUBMITTED")

	_, w = env.ExecuteRequestAndParse(t, dave, http.MethodPut, offerPath(daveOffer)+"/withdraw", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, w = env.ExecuteRequestAndParse(t, carol, http.MethodPut, offerPath(daveOffer)+"/accept", nil)
	require.Equal(t, http.StatusBadRequest, w.Code, "a terminal offer is a bad request for any caller")

	_, w = env.ExecuteRequestAndParse(t, dave, http.MethodPut, offerPath(carolOffer)+"/withdraw", nil)
	require.Equal(t, http.StatusForbidden, w.Code, "only the bidder withdraws")

	resp, w = env.ExecuteRequestAndParse(t, carol, http.MethodPut, offerPath(carolOffer)+"/withdraw", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "WITHDRAWN", dataMap(t, resp)["status"])

	_, w = env.ExecuteRequestAndParse(t, alice, http.MethodPut, offerPath(999)+"/accept", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// StartAuctionHandler validation over HTTP
func TestStartAuction(t *testing.T) {
	tests := []struct {
		name       string
		requester  int64
		artworkID  int64
		body       any
		wantStatus int
		wantMsg    string
	}{
		{
			name:      "valid",
			requester: alice,
			artworkID: 1,
			body: map[string]any{
				"start_time": at(10, 0).Format(time.RFC3339), "end_time": at(11, 0).Format(time.RFC3339),
				"starting_price": "100", "currency": "EUR",
			},
			wantStatus: http.StatusCreated,
			wantMsg:    "auction scheduled successfully",
		},
		{
			name:      "not_owner",
			requester: bob,
			artworkID: 1,
			body: map[string]any{
				"start_time": at(10, 0).Format(time.RFC3339), "end_time": at(11, 0).Format(time.RFC3339),
				"starting_price": "100", "currency": "EUR",
			},
			wantStatus: http.StatusForbidden,
			wantMsg:    "requester does not own the artwork",
		},
		{
			name:      "missing_artwork",
			requester: alice,
			artworkID: 42,
			body: map[string]any{
				"start_time": at(10, 0).Format(time.RFC3339), "end_time": at(11, 0).Format(time.RFC3339),
				"starting_price": "100", "currency": "EUR",
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    "artwork not found",
		},
		{
			name:      "start_in_past",
			requester: alice,
			artworkID: 1,
			body: map[string]any{
				"start_time": at(8, 0).Format(time.RFC3339), "end_time": at(11, 0).Format(time.RFC3339),
				"starting_price": "100", "currency": "EUR",
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid auction window",
		},
		{
			name:      "end_before_start",
			requester: alice,
			artworkID: 1,
			body: map[string]any{
				"start_time": at(11, 0).Format(time.RFC3339), "end_time": at(10, 0).Format(time.RFC3339),
				"starting_price": "100", "currency": "EUR",
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid auction window",
		},
		{
			name:      "unsupported_currency",
			requester: alice,
			artworkID: 1,
			body: map[string]any{
				"start_time": at(10, 0).Format(time.RFC3339), "end_time": at(11, 0).Format(time.RFC3339),
				"starting_price": "100", "currency": "XYZ",
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "unsupported currency",
		},
		{
			name:       "invalid_json",
			requester:  alice,
			artworkID:  1,
			body:       "{start_time: tomorrow}",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid request payload",
		},
		{
			name:      "anonymous",
			artworkID: 1,
			body: map[string]any{
				"start_time": at(10, 0).Format(time.RFC3339), "end_time": at(11, 0).Format(time.RFC3339),
				"starting_price": "100", "currency": "EUR",
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "authentication required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := SetupTestEnv(t)
			resp, w := env.ExecuteRequestAndParse(t, tt.requester, http.MethodPost, artworkPath(tt.artworkID)+"/auction/start", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			require.Contains(t, resp["message"], tt.wantMsg)
		})
	}
}

// Overlap, single pending auction and end-time updates
func TestAuctionScheduling(t *testing.T) {
	env := SetupTestEnv(t)
	auctionID := env.startAuction(t, alice, 1, at(10, 0), at(11, 0), "100")

	schedule := func(start, end time.Time) (map[string]any, int) {
		resp, w := env.ExecuteRequestAndParse(t, alice, http.MethodPost, artworkPath(1)+"/auction/start", map[string]any{
			"start_time": start.Format(time.RFC3339), "end_time": end.Format(time.RFC3339),
			"starting_price": "100", "currency": "USD",
		})
		return resp, w.Code
	}

	resp, code := schedule(at(10, 30), at(11, 30))
	require.Equal(t, http.StatusConflict, code)
	require.Contains(t, resp["message"], "overlaps")

	resp, code = schedule(at(12, 0), at(13, 0))
	require.Equal(t, http.StatusConflict, code)
	require.Contains(t, resp["message"], "pending or active auction")

	// a different artwork of the same owner is independent
	env.startAuction(t, alice, 2, at(10, 0), at(11, 0), "100")

	_, w := env.ExecuteRequestAndParse(t, bob, http.MethodPut, auctionPath(auctionID), map[string]any{"end_time": at(10, 30).Format(time.RFC3339)})
	require.Equal(t, http.StatusForbidden, w.Code)

	env.clock.Set(at(10, 15))
	resp, w = env.ExecuteRequestAndParse(t, alice, http.MethodPut, auctionPath(auctionID), map[string]any{"end_time": at(10, 15).Format(time.RFC3339)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, at(10, 15).Format(time.RFC3339), dataMap(t, resp)["end_time"])

	env.clock.Set(at(10, 16))
	resp, w = env.ExecuteRequestAndParse(t, carol, http.MethodGet, artworkPath(1)+"/auction/active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, dataMap(t, resp)["active"], "ended early")

	_, code = schedule(at(12, 0), at(13, 0))
	require.Equal(t, http.StatusCreated, code, "rescheduling allowed once the previous auction ended")

	_, w = env.ExecuteRequestAndParse(t, alice, http.MethodPut, auctionPath(999), map[string]any{"end_time": at(12, 0).Format(time.RFC3339)})
	require.Equal(t, http.StatusNotFound, w.Code)
}

// DiscoverHandler ranking over HTTP
func TestDiscover(t *testing.T) {
	env := SetupTestEnv(t)
	first := env.startAuction(t, alice, 1, at(10, 0), at(11, 0), "100")
	second := env.startAuction(t, bob, 3, at(10, 0), at(11, 0), "100")
	quiet := env.startAuction(t, alice, 2, at(10, 0), at(12, 0), "10")

	env.clock.Set(at(10, 5))
	for _, bid := range []struct {
		bidder, auction int64
		amount          string
	}{
		{carol, first, "150"},
		{dave, first, "200"},
		{carol, second, "120"},
	} {
		_, w := env.makeOffer(t, bid.bidder, bid.auction, bid.amount)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	resp, w := env.ExecuteRequestAndParse(t, carol, http.MethodGet, "/discover", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ranked := dataMap(t, resp)["high_stakes"].([]any)
	require.Len(t, ranked, 3)

	order := make([]int64, 0, len(ranked))
	for _, entry := range ranked {
		order = append(order, int64(entry.(map[string]any)["auction_id"].(float64)))
	}
	require.Equal(t, []int64{first, second, quiet}, order)

	resp, w = env.ExecuteRequestAndParse(t, carol, http.MethodGet, "/discover?count=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataMap(t, resp)["high_stakes"].([]any), 1)

	_, w = env.ExecuteRequestAndParse(t, carol, http.MethodGet, "/discover?count=-2", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, w = env.ExecuteRequestAndParse(t, 0, http.MethodGet, "/discover", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	env.clock.Set(at(11, 30))
	resp, w = env.ExecuteRequestAndParse(t, carol, http.MethodGet, "/discover", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ranked = dataMap(t, resp)["high_stakes"].([]any)
	require.Len(t, ranked, 1, "ended auctions drop out")
}
