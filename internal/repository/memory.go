package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"artwork-auctions/internal/auctionerrors"
	model "artwork-auctions/internal/models"

	"github.com/shopspring/decimal"
)

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB and ArtworkLookup
type MemoryRepo struct {
	mu              sync.RWMutex
	artworks        map[int64]model.Artwork
	auctions        map[int64]model.Auction
	offers          map[int64]model.Offer
	artworkAuctions map[int64][]int64 // key: artworkID -> value: auction ids
	auctionOffers   map[int64][]int64 // key: auctionID -> value: offer ids in insertion order
	nextAuctionID   int64
	nextOfferID     int64

	artworkLocks keyedMutex
	auctionLocks keyedMutex
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		artworks:        make(map[int64]model.Artwork),
		auctions:        make(map[int64]model.Auction),
		offers:          make(map[int64]model.Offer),
		artworkAuctions: make(map[int64][]int64),
		auctionOffers:   make(map[int64][]int64),
	}
}

// keyedMutex hands out one mutex per id
type keyedMutex struct {
	locks sync.Map // int64 -> *sync.Mutex
}

func (k *keyedMutex) lock(id int64) (unlock func()) {
	v, _ := k.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// AddArtwork registers an artwork and its owner. Artworks are owned by another service,
// so this is used for seeding and tests.
func (r *MemoryRepo) AddArtwork(artwork model.Artwork) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.artworks[artwork.ID] = artwork
}

// GetArtwork implements ArtworkLookup
func (r *MemoryRepo) GetArtwork(_ context.Context, artworkID int64) (model.Artwork, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artwork, ok := r.artworks[artworkID]
	if !ok {
		return model.Artwork{}, fmt.Errorf("get artwork %d: %w", artworkID, auctionerrors.ErrArtworkNotFound)
	}
	return artwork, nil
}

// GetAuction returns a single auction
func (r *MemoryRepo) GetAuction(_ context.Context, auctionID int64) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getAuctionLocked(auctionID)
}

func (r *MemoryRepo) getAuctionLocked(auctionID int64) (model.Auction, error) {
	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %d: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// FindActiveAuction returns the auction on artworkID whose window contains now
func (r *MemoryRepo) FindActiveAuction(_ context.Context, artworkID int64, now time.Time) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.artworkAuctions[artworkID] {
		if auction := r.auctions[id]; auction.ActiveAt(now) {
			return auction, nil
		}
	}
	return model.Auction{}, fmt.Errorf("find active auction for artwork %d: %w", artworkID, auctionerrors.ErrNoActiveAuction)
}

// ListActiveAuctionStats returns every auction open at now with its offer aggregate
func (r *MemoryRepo) ListActiveAuctionStats(_ context.Context, now time.Time) ([]model.AuctionStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make([]model.AuctionStats, 0)
	for _, auction := range r.auctions {
		if !auction.ActiveAt(now) {
			continue
		}
		stats = append(stats, model.AuctionStats{Auction: auction, Offers: r.offerStatsLocked(auction.ID)})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].ID < stats[j].ID })
	return stats, nil
}

// GetOffer returns a single offer
func (r *MemoryRepo) GetOffer(_ context.Context, offerID int64) (model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offer, ok := r.offers[offerID]
	if !ok {
		return model.Offer{}, fmt.Errorf("get offer %d: %w", offerID, auctionerrors.ErrOfferNotFound)
	}
	return offer, nil
}

// ListOffersByAuction returns all offers on an auction, most recent first
func (r *MemoryRepo) ListOffersByAuction(_ context.Context, auctionID int64) ([]model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.auctionOffers[auctionID]
	offers := make([]model.Offer, 0, len(ids))
	for _, id := range ids {
		offers = append(offers, r.offers[id])
	}
	sort.SliceStable(offers, func(i, j int) bool {
		if !offers[i].Timestamp.Equal(offers[j].Timestamp) {
			return offers[i].Timestamp.After(offers[j].Timestamp)
		}
		return offers[i].ID > offers[j].ID
	})
	return offers, nil
}

// GetOfferStats returns the count and maximum amount over every offer on an auction
func (r *MemoryRepo) GetOfferStats(_ context.Context, auctionID int64) (model.OfferStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.offerStatsLocked(auctionID), nil
}

func (r *MemoryRepo) offerStatsLocked(auctionID int64) model.OfferStats {
	stats := model.OfferStats{MaxAmount: decimal.Zero}
	for _, id := range r.auctionOffers[auctionID] {
		stats.Count++
		stats.MaxAmount = decimal.Max(stats.MaxAmount, r.offers[id].Amount)
	}
	return stats
}

// TransitionOffer moves an offer from one status to another only if it is still in from
func (r *MemoryRepo) TransitionOffer(_ context.Context, offerID int64, from, to model.OfferStatus) (model.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	offer, ok := r.offers[offerID]
	if !ok {
		return model.Offer{}, fmt.Errorf("transition offer %d: %w", offerID, auctionerrors.ErrOfferNotFound)
	}
	if offer.Status != from {
		return model.Offer{}, fmt.Errorf("transition offer %d from %s (is %s): %w", offerID, from, offer.Status, auctionerrors.ErrOfferNotSubmitted)
	}
	offer.Status = to
	r.offers[offerID] = offer
	return offer, nil
}

// WithArtworkLock runs fn while holding the artwork's scheduling lock
func (r *MemoryRepo) WithArtworkLock(ctx context.Context, artworkID int64, fn func(tx AuctionTx) error) error {
	unlock := r.artworkLocks.lock(artworkID)
	defer unlock()

	tx := newMemoryTx(r, 0)
	if err := fn(tx); err != nil {
		return err
	}
	return tx.commit()
}

// WithAuctionLock runs fn while holding the auction's bid-ladder lock
func (r *MemoryRepo) WithAuctionLock(ctx context.Context, auctionID int64, fn func(tx AuctionTx) error) error {
	unlock := r.auctionLocks.lock(auctionID)
	defer unlock()

	if _, err := r.GetAuction(ctx, auctionID); err != nil {
		return err
	}

	tx := newMemoryTx(r, auctionID)
	if err := fn(tx); err != nil {
		return err
	}
	return tx.commit()
}

// memoryTx buffers writes until commit so a failing section leaves no trace
type memoryTx struct {
	repo        *MemoryRepo
	heldAuction int64

	auctions []model.Auction
	endTimes map[int64]time.Time
	offers   []model.Offer
}

func newMemoryTx(repo *MemoryRepo, heldAuction int64) *memoryTx {
	return &memoryTx{repo: repo, heldAuction: heldAuction, endTimes: make(map[int64]time.Time)}
}

func (tx *memoryTx) overlay(auction model.Auction) model.Auction {
	if end, ok := tx.endTimes[auction.ID]; ok {
		auction.EndTime = end
	}
	return auction
}

func (tx *memoryTx) GetAuction(_ context.Context, auctionID int64) (model.Auction, error) {
	for _, a := range tx.auctions {
		if a.ID == auctionID {
			return tx.overlay(a), nil
		}
	}

	tx.repo.mu.RLock()
	defer tx.repo.mu.RUnlock()

	auction, err := tx.repo.getAuctionLocked(auctionID)
	if err != nil {
		return model.Auction{}, err
	}
	return tx.overlay(auction), nil
}

func (tx *memoryTx) ListAuctionsByArtwork(_ context.Context, artworkID int64) ([]model.Auction, error) {
	tx.repo.mu.RLock()
	ids := tx.repo.artworkAuctions[artworkID]
	auctions := make([]model.Auction, 0, len(ids)+len(tx.auctions))
	for _, id := range ids {
		auctions = append(auctions, tx.overlay(tx.repo.auctions[id]))
	}
	tx.repo.mu.RUnlock()

	for _, a := range tx.auctions {
		if a.ArtworkID == artworkID {
			auctions = append(auctions, tx.overlay(a))
		}
	}
	return auctions, nil
}

func (tx *memoryTx) CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error) {
	existing, err := tx.ListAuctionsByArtwork(ctx, auction.ArtworkID)
	if err != nil {
		return model.Auction{}, err
	}
	for _, other := range existing {
		if other.Overlaps(auction.StartTime, auction.EndTime) {
			return model.Auction{}, fmt.Errorf("create auction on artwork %d overlaps auction %d: %w", auction.ArtworkID, other.ID, auctionerrors.ErrStoreConflict)
		}
	}

	tx.repo.mu.Lock()
	tx.repo.nextAuctionID++
	auction.ID = tx.repo.nextAuctionID
	tx.repo.mu.Unlock()

	tx.auctions = append(tx.auctions, auction)
	return auction, nil
}

func (tx *memoryTx) UpdateAuctionEndTime(ctx context.Context, auctionID int64, endTime time.Time) (model.Auction, error) {
	auction, err := tx.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Auction{}, err
	}
	tx.endTimes[auctionID] = endTime
	auction.EndTime = endTime
	return auction, nil
}

func (tx *memoryTx) MaxOfferAmount(_ context.Context, auctionID int64) (decimal.Decimal, error) {
	tx.repo.mu.RLock()
	highest := tx.repo.offerStatsLocked(auctionID).MaxAmount
	tx.repo.mu.RUnlock()

	for _, o := range tx.offers {
		if o.AuctionID == auctionID {
			highest = decimal.Max(highest, o.Amount)
		}
	}
	return highest, nil
}

func (tx *memoryTx) CreateOffer(ctx context.Context, offer model.Offer) (model.Offer, error) {
	if _, err := tx.GetAuction(ctx, offer.AuctionID); err != nil {
		return model.Offer{}, fmt.Errorf("create offer: %w", err)
	}

	tx.repo.mu.Lock()
	for _, id := range tx.repo.auctionOffers[offer.AuctionID] {
		if tx.repo.offers[id].Amount.Equal(offer.Amount) {
			tx.repo.mu.Unlock()
			return model.Offer{}, fmt.Errorf("create offer on auction %d with amount %s: %w", offer.AuctionID, offer.Amount, auctionerrors.ErrStoreConflict)
		}
	}
	tx.repo.nextOfferID++
	offer.ID = tx.repo.nextOfferID
	tx.repo.mu.Unlock()

	tx.offers = append(tx.offers, offer)
	return offer, nil
}

// commit applies buffered writes. End-time changes take the auction lock first so
// they never interleave with a bid-ladder section on the same auction.
func (tx *memoryTx) commit() error {
	ids := make([]int64, 0, len(tx.endTimes))
	for id := range tx.endTimes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if id == tx.heldAuction {
			continue
		}
		unlock := tx.repo.auctionLocks.lock(id)
		defer unlock()
	}

	r := tx.repo
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range tx.auctions {
		r.auctions[a.ID] = a
		r.artworkAuctions[a.ArtworkID] = append(r.artworkAuctions[a.ArtworkID], a.ID)
	}
	for id, end := range tx.endTimes {
		if a, ok := r.auctions[id]; ok {
			a.EndTime = end
			r.auctions[id] = a
		}
	}
	for _, o := range tx.offers {
		r.offers[o.ID] = o
		r.auctionOffers[o.AuctionID] = append(r.auctionOffers[o.AuctionID], o.ID)
	}
	return nil
}
