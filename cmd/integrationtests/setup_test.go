package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	auction "artwork-auctions/internal/auctionService"
	"artwork-auctions/internal/auth"
	"artwork-auctions/internal/metrics"
	model "artwork-auctions/internal/models"
	"artwork-auctions/internal/repository"
	"artwork-auctions/internal/server"
	handler "artwork-auctions/services/auction/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "integration-secret"

// Users seeded into every test environment
const (
	alice int64 = 1 // owns artworks 1 and 2
	bob   int64 = 2 // owns artwork 3
	carol int64 = 3
	dave  int64 = 4
)

// testClock is a settable time source for the service
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// testEnv is a router over an in-memory store with a controllable clock
type testEnv struct {
	router *gin.Engine
	clock  *testClock
	tokens map[int64]string
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 5, 1, hour, minute, 0, 0, time.UTC)
}

// SetupTestEnv initializes the router with an in-memory repository seeded with artworks.
func SetupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	repo.AddArtwork(model.Artwork{ID: 1, OwnerID: alice})
	repo.AddArtwork(model.Artwork{ID: 2, OwnerID: alice})
	repo.AddArtwork(model.Artwork{ID: 3, OwnerID: bob})

	clock := &testClock{now: at(9, 0)}
	service := auction.NewAuctionService(repo, repo, auction.WithClock(clock.Now), auction.WithMetrics(metrics.New()))

	router := server.SetupRouter(service, server.Options{
		Resolver:       auth.NewJWTResolver(testSecret),
		RequestTimeout: 5 * time.Second,
		OfferLimiter:   server.NewUserRateLimiter(1000, 1000),
		Handler:        handler.HandlerConfig{DiscoverDefaultCount: 10, DiscoverMaxCount: 50},
	})

	tokens := make(map[int64]string)
	for _, userID := range []int64{alice, bob, carol, dave} {
		token, err := auth.IssueToken(testSecret, userID, time.Hour)
		require.NoError(t, err)
		tokens[userID] = token
	}

	return &testEnv{router: router, clock: clock, tokens: tokens}
}

// ExecuteRequestAndParse executes an HTTP request as userID (0 for anonymous) and parses the envelope
func (e *testEnv) ExecuteRequestAndParse(t *testing.T, userID int64, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("Authorization", "Bearer "+e.tokens[userID])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// startAuction schedules an auction and returns its id
func (e *testEnv) startAuction(t *testing.T, owner, artworkID int64, start, end time.Time, price string) int64 {
	t.Helper()
	resp, w := e.ExecuteRequestAndParse(t, owner, "POST", artworkPath(artworkID)+"/auction/start", map[string]any{
		"start_time":     start.Format(time.RFC3339),
		"end_time":       end.Format(time.RFC3339),
		"starting_price": price,
		"currency":       "USD",
	})
	require.Equal(t, 201, w.Code, w.Body.String())
	return int64(resp["data"].(map[string]any)["auction_id"].(float64))
}

// makeOffer submits a bid and returns the recorder
func (e *testEnv) makeOffer(t *testing.T, bidder, auctionID int64, amount string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	return e.ExecuteRequestAndParse(t, bidder, "POST", auctionPath(auctionID)+"/make-an-offer", map[string]any{"amount": amount})
}

func artworkPath(id int64) string { return "/artwork/" + strconv.FormatInt(id, 10) }
func auctionPath(id int64) string { return "/auction/" + strconv.FormatInt(id, 10) }
func offerPath(id int64) string   { return "/offer/" + strconv.FormatInt(id, 10) }
