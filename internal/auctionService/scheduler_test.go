package auction

import (
	"context"
	"errors"
	"testing"
	"time"

	"artwork-auctions/internal/auctionerrors"
	model "artwork-auctions/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAuctionService_StartAuction(t *testing.T) {
	const artworkID int64 = 7

	valid := StartAuctionParams{
		ArtworkID:     artworkID,
		RequesterID:   ownerID,
		StartTime:     testNow.Add(time.Hour),
		EndTime:       testNow.Add(2 * time.Hour),
		StartingPrice: decimal.NewFromInt(100),
		Currency:      model.USD,
	}
	with := func(mutate func(p *StartAuctionParams)) StartAuctionParams {
		p := valid
		mutate(&p)
		return p
	}
	past := model.Auction{ID: 3, ArtworkID: artworkID, StartTime: testNow.Add(-3 * time.Hour), EndTime: testNow.Add(-2 * time.Hour)}

	tests := []struct {
		name          string
		params        StartAuctionParams
		mockSetup     func(f *fixture)
		expectError   bool
		expectedError error
	}{
		{
			name:   "valid_auction",
			params: valid,
			mockSetup: func(f *fixture) {
				f.expectArtwork(artworkID, ownerID)
				f.expectArtworkLock(artworkID)
				f.tx.EXPECT().ListAuctionsByArtwork(gomock.Any(), artworkID).Return([]model.Auction{past}, nil)
				f.tx.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a model.Auction) (model.Auction, error) {
						a.ID = 4
						return a, nil
					})
			},
		},
		{
			name:   "start_within_grace",
			params: with(func(p *StartAuctionParams) { p.StartTime = testNow.Add(-30 * time.Second) }),
			mockSetup: func(f *fixture) {
				f.expectArtwork(artworkID, ownerID)
				f.expectArtworkLock(artworkID)
				f.tx.EXPECT().ListAuctionsByArtwork(gomock.Any(), artworkID).Return(nil, nil)
				f.tx.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a model.Auction) (model.Auction, error) {
						a.ID = 4
						return a, nil
					})
			},
		},
		{
			name:   "artwork_not_found",
			params: valid,
			mockSetup: func(f *fixture) {
				f.artworks.EXPECT().GetArtwork(gomock.Any(), artworkID).Return(model.Artwork{}, auctionerrors.ErrArtworkNotFound)
			},
			expectedError: auctionerrors.ErrNotFound,
		},
		{
			name:   "requester_not_owner",
			params: with(func(p *StartAuctionParams) { p.RequesterID = bidderID }),
			mockSetup: func(f *fixture) {
				f.expectArtwork(artworkID, ownerID)
			},
			expectedError: auctionerrors.ErrUnauthorized,
		},
		{
			name:   "start_too_far_in_past",
			params: with(func(p *StartAuctionParams) { p.StartTime = testNow.Add(-2 * time.Minute) }),
			mockSetup: func(f *fixture) {
				f.expectArtwork(artworkID, ownerID)
			},
			expectedError: auctionerrors.ErrStartInPast,
		},
		{
			name:   "end_equals_start",
			params: with(func(p *StartAuctionParams) { p.EndTime = p.StartTime }),
			mockSetup: func(f *fixture) {
				f.expectArtwork(artworkID, ownerID)
			},
			expectedError: auctionerrors.ErrInvalidWindow,
		},
		{
			name:   "negative_starting_price",
			params: with(func(p *StartAuctionParams) { p.StartingPrice = decimal.NewFromInt(-1) }),
			mockSetup: func(f *fixture) {
				f.expectArtwork(artworkID, ownerID)
			},
			expectedError: auctionerrors.ErrInvalidPrice,
		},
		{
			name:   "starting_price_below_stored_scale",
			params: with(func(p *StartAuctionParams) { p.StartingPrice = decimal.RequireFromString("99.99995") }),
			mockSetup: func(f *fixture) {
				f.expectArtwork(artworkID, ownerID)
			},
			expectedError: auctionerrors.ErrInvalidPrice,
		},
		{
			name:   "starting_price_trailing_zeros",
			params: with(func(p *StartAuctionParams) { p.StartingPrice = decimal.RequireFromString("100.500000") }),
			mockSetup: func(f *fixture) {
				f.expectArtwork(artworkID, ownerID)
				f.expectArtworkLock(artworkID)
				f.tx.EXPECT().ListAuctionsByArtwork(gomock.Any(), artworkID).Return(nil, nil)
				f.tx.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a model.Auction) (model.Auction, error) {
						a.ID = 4
						return a, nil
					})
			},
		},
		{
			name:   "unsupported_currency",
			params: with(func(p *StartAuctionParams) { p.Currency = "JPY" }),
			mockSetup: func(f *fixture) {
				f.expectArtwork(artworkID, ownerID)
			},
			expectedError: auctionerrors.ErrInvalidCurrency,
		},
		{
			name:   "overlapping_auction",
			params: valid,
			mockSetup: func(f *fixture) {
				f.expectArtwork(artworkID, ownerID)
				f.expectArtworkLock(artworkID)
				f.tx.EXPECT().ListAuctionsByArtwork(gomock.Any(), artworkID).Return([]model.Auction{
					{ID: 5, ArtworkID: artworkID, StartTime: testNow.Add(90 * time.Minute), EndTime: testNow.Add(3 * time.Hour)},
				}, nil)
			},
			expectedError: auctionerrors.ErrAuctionOverlap,
		},
		{
			name:   "touching_windows_overlap",
			params: valid,
			mockSetup: func(f *fixture) {
				f.expectArtwork(artworkID, ownerID)
				f.expectArtworkLock(artworkID)
				f.tx.EXPECT().ListAuctionsByArtwork(gomock.Any(), artworkID).Return([]model.Auction{
					{ID: 5, ArtworkID: artworkID, StartTime: testNow.Add(2 * time.Hour), EndTime: testNow.Add(3 * time.Hour)},
				}, nil)
			},
			expectedError: auctionerrors.ErrAuctionOverlap,
		},
		{
			name:   "future_auction_exists",
			params: valid,
			mockSetup: func(f *fixture) {
				f.expectArtwork(artworkID, ownerID)
				f.expectArtworkLock(artworkID)
				f.tx.EXPECT().ListAuctionsByArtwork(gomock.Any(), artworkID).Return([]model.Auction{
					{ID: 5, ArtworkID: artworkID, StartTime: testNow.Add(5 * time.Hour), EndTime: testNow.Add(6 * time.Hour)},
				}, nil)
			},
			expectedError: auctionerrors.ErrFutureAuctionExists,
		},
		{
			name:   "store_rejects_concurrent_insert",
			params: valid,
			mockSetup: func(f *fixture) {
				f.expectArtwork(artworkID, ownerID)
				f.expectArtworkLock(artworkID)
				f.tx.EXPECT().ListAuctionsByArtwork(gomock.Any(), artworkID).Return(nil, nil)
				f.tx.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).Return(model.Auction{}, auctionerrors.ErrStoreConflict)
			},
			expectedError: auctionerrors.ErrConflict,
		},
		{
			name:   "store_failure",
			params: valid,
			mockSetup: func(f *fixture) {
				f.expectArtwork(artworkID, ownerID)
				f.repo.EXPECT().WithArtworkLock(gomock.Any(), artworkID, gomock.Any()).Return(errors.New("connection reset"))
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.mockSetup(f)

			auction, err := f.service.StartAuction(context.Background(), tc.params)

			if tc.expectError || tc.expectedError != nil {
				requireErrorIs(t, err, tc.expectedError)
				require.Equal(t, model.Auction{}, auction)
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(4), auction.ID)
			require.Equal(t, artworkID, auction.ArtworkID)
			require.True(t, auction.EndTime.After(auction.StartTime))
			require.False(t, auction.StartTime.Before(testNow.Add(-time.Minute)))
			require.True(t, auction.StartingPrice.Equal(tc.params.StartingPrice))
		})
	}
}

func TestAuctionService_UpdateAuctionEndTime(t *testing.T) {
	const artworkID int64 = 7
	current := runningAuction(10, artworkID, 100)

	tests := []struct {
		name          string
		auctionID     int64
		requesterID   int64
		newEnd        time.Time
		mockSetup     func(f *fixture)
		expectedError error
	}{
		{
			name:        "extend",
			requesterID: ownerID,
			newEnd:      current.EndTime.Add(time.Hour),
			mockSetup: func(f *fixture) {
				f.repo.EXPECT().GetAuction(gomock.Any(), current.ID).Return(current, nil)
				f.expectArtwork(artworkID, ownerID)
				f.expectArtworkLock(artworkID)
				f.tx.EXPECT().ListAuctionsByArtwork(gomock.Any(), artworkID).Return([]model.Auction{current}, nil)
				f.tx.EXPECT().UpdateAuctionEndTime(gomock.Any(), current.ID, current.EndTime.Add(time.Hour)).
					DoAndReturn(func(_ context.Context, _ int64, end time.Time) (model.Auction, error) {
						updated := current
						updated.EndTime = end
						return updated, nil
					})
			},
		},
		{
			name:        "end_early_now",
			requesterID: ownerID,
			newEnd:      testNow,
			mockSetup: func(f *fixture) {
				f.repo.EXPECT().GetAuction(gomock.Any(), current.ID).Return(current, nil)
				f.expectArtwork(artworkID, ownerID)
				f.expectArtworkLock(artworkID)
				f.tx.EXPECT().ListAuctionsByArtwork(gomock.Any(), artworkID).Return([]model.Auction{current}, nil)
				f.tx.EXPECT().UpdateAuctionEndTime(gomock.Any(), current.ID, testNow).
					DoAndReturn(func(_ context.Context, _ int64, end time.Time) (model.Auction, error) {
						updated := current
						updated.EndTime = end
						return updated, nil
					})
			},
		},
		{
			name:        "auction_not_found",
			requesterID: ownerID,
			newEnd:      testNow,
			mockSetup: func(f *fixture) {
				f.repo.EXPECT().GetAuction(gomock.Any(), current.ID).Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedError: auctionerrors.ErrNotFound,
		},
		{
			name:        "requester_not_owner",
			requesterID: bidderID,
			newEnd:      testNow,
			mockSetup: func(f *fixture) {
				f.repo.EXPECT().GetAuction(gomock.Any(), current.ID).Return(current, nil)
				f.expectArtwork(artworkID, ownerID)
			},
			expectedError: auctionerrors.ErrUnauthorized,
		},
		{
			name:        "end_not_after_start",
			requesterID: ownerID,
			newEnd:      current.StartTime,
			mockSetup: func(f *fixture) {
				f.repo.EXPECT().GetAuction(gomock.Any(), current.ID).Return(current, nil)
				f.expectArtwork(artworkID, ownerID)
			},
			expectedError: auctionerrors.ErrInvalidWindow,
		},
		{
			name:        "extension_overlaps_next_auction",
			requesterID: ownerID,
			newEnd:      current.EndTime.Add(3 * time.Hour),
			mockSetup: func(f *fixture) {
				next := model.Auction{ID: 11, ArtworkID: artworkID, StartTime: current.EndTime.Add(2 * time.Hour), EndTime: current.EndTime.Add(4 * time.Hour)}
				f.repo.EXPECT().GetAuction(gomock.Any(), current.ID).Return(current, nil)
				f.expectArtwork(artworkID, ownerID)
				f.expectArtworkLock(artworkID)
				f.tx.EXPECT().ListAuctionsByArtwork(gomock.Any(), artworkID).Return([]model.Auction{current, next}, nil)
			},
			expectedError: auctionerrors.ErrAuctionOverlap,
		},
		{
			name:        "reopening_past_auction_while_another_pending",
			auctionID:   9,
			requesterID: ownerID,
			newEnd:      testNow.Add(30 * time.Minute),
			mockSetup: func(f *fixture) {
				ended := model.Auction{ID: 9, ArtworkID: artworkID, StartTime: testNow.Add(-3 * time.Hour), EndTime: testNow.Add(-2 * time.Hour)}
				pending := model.Auction{ID: 11, ArtworkID: artworkID, StartTime: testNow.Add(2 * time.Hour), EndTime: testNow.Add(3 * time.Hour)}
				f.repo.EXPECT().GetAuction(gomock.Any(), ended.ID).Return(ended, nil)
				f.expectArtwork(artworkID, ownerID)
				f.expectArtworkLock(artworkID)
				f.tx.EXPECT().ListAuctionsByArtwork(gomock.Any(), artworkID).Return([]model.Auction{ended, pending}, nil)
			},
			expectedError: auctionerrors.ErrFutureAuctionExists,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.mockSetup(f)

			auctionID := tc.auctionID
			if auctionID == 0 {
				auctionID = current.ID
			}

			updated, err := f.service.UpdateAuctionEndTime(context.Background(), auctionID, tc.requesterID, tc.newEnd)
			if tc.expectedError != nil {
				requireErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.True(t, updated.EndTime.Equal(tc.newEnd))
		})
	}
}

func TestCheckSchedule(t *testing.T) {
	base := testNow.Add(time.Hour)
	existing := []model.Auction{
		{ID: 1, StartTime: base, EndTime: base.Add(time.Hour)},
	}

	require.ErrorIs(t, checkSchedule(existing, 0, base.Add(time.Hour), base.Add(2*time.Hour), testNow), auctionerrors.ErrAuctionOverlap)
	require.ErrorIs(t, checkSchedule(existing, 0, base.Add(2*time.Hour), base.Add(3*time.Hour), testNow), auctionerrors.ErrFutureAuctionExists)
	require.NoError(t, checkSchedule(existing, 1, base, base.Add(3*time.Hour), testNow), "an auction never conflicts with itself")
	require.NoError(t, checkSchedule(nil, 0, base, base.Add(time.Hour), testNow))
}
