package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"artwork-auctions/internal/auctionerrors"
	model "artwork-auctions/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/shopspring/decimal"
)

const (
	auctionColumns = `id, artwork_id, start_time, end_time, starting_price, currency`
	offerColumns   = `id, auction_id, user_id, amount, submitted_at, status`
)

// SQLSTATE codes that mean another writer won
const (
	pgUniqueViolation      = "23505"
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// pgCheckViolation means a row broke a CHECK constraint such as a positive amount
const pgCheckViolation = "23514"

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// OpenPostgres opens a pgx-backed connection pool and checks it is reachable
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

// PostgresRepo is the PostgreSQL implementation of AuctionDB
type PostgresRepo struct {
	db *sql.DB
}

// NewPostgresRepo creates a new PostgresRepo
func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// GetAuction returns a single auction
func (r *PostgresRepo) GetAuction(ctx context.Context, auctionID int64) (model.Auction, error) {
	return getAuction(ctx, r.db, auctionID)
}

// FindActiveAuction returns the auction on artworkID whose window contains now
func (r *PostgresRepo) FindActiveAuction(ctx context.Context, artworkID int64, now time.Time) (model.Auction, error) {
	query := `SELECT ` + auctionColumns + `
		FROM auctions
		WHERE artwork_id = $1 AND start_time <= $2 AND end_time >= $2
		ORDER BY start_time
		LIMIT 1`

	auction, err := scanAuction(r.db.QueryRowContext(ctx, query, artworkID, now))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("find active auction for artwork %d: %w", artworkID, auctionerrors.ErrNoActiveAuction)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("find active auction for artwork %d: %w", artworkID, err)
	}
	return auction, nil
}

// ListActiveAuctionStats returns every auction open at now with its offer aggregate
func (r *PostgresRepo) ListActiveAuctionStats(ctx context.Context, now time.Time) ([]model.AuctionStats, error) {
	query := `
		SELECT a.id, a.artwork_id, a.start_time, a.end_time, a.starting_price, a.currency,
		       COUNT(o.id), COALESCE(MAX(o.amount), 0)
		FROM auctions a
		LEFT JOIN offers o ON o.auction_id = a.id
		WHERE a.start_time <= $1 AND a.end_time >= $1
		GROUP BY a.id
		ORDER BY a.id`

	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("list active auctions: %w", err)
	}
	defer rows.Close()

	stats := make([]model.AuctionStats, 0)
	for rows.Next() {
		var s model.AuctionStats
		if err := rows.Scan(
			&s.ID,
			&s.ArtworkID,
			&s.StartTime,
			&s.EndTime,
			&s.StartingPrice,
			&s.Currency,
			&s.Offers.Count,
			&s.Offers.MaxAmount,
		); err != nil {
			return nil, fmt.Errorf("list active auctions: scan: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list active auctions: %w", err)
	}
	return stats, nil
}

// GetOffer returns a single offer
func (r *PostgresRepo) GetOffer(ctx context.Context, offerID int64) (model.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	offer, err := scanOffer(r.db.QueryRowContext(ctx, query, offerID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Offer{}, fmt.Errorf("get offer %d: %w", offerID, auctionerrors.ErrOfferNotFound)
	}
	if err != nil {
		return model.Offer{}, fmt.Errorf("get offer %d: %w", offerID, err)
	}
	return offer, nil
}

// ListOffersByAuction returns all offers on an auction, most recent first
func (r *PostgresRepo) ListOffersByAuction(ctx context.Context, auctionID int64) ([]model.Offer, error) {
	query := `SELECT ` + offerColumns + `
		FROM offers
		WHERE auction_id = $1
		ORDER BY submitted_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, auctionID)
	if err != nil {
		return nil, fmt.Errorf("list offers for auction %d: %w", auctionID, err)
	}
	defer rows.Close()

	offers := make([]model.Offer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("list offers for auction %d: scan: %w", auctionID, err)
		}
		offers = append(offers, offer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list offers for auction %d: %w", auctionID, err)
	}
	return offers, nil
}

// GetOfferStats returns the count and maximum amount over every offer on an auction
func (r *PostgresRepo) GetOfferStats(ctx context.Context, auctionID int64) (model.OfferStats, error) {
	query := `SELECT COUNT(*), COALESCE(MAX(amount), 0) FROM offers WHERE auction_id = $1`

	var stats model.OfferStats
	if err := r.db.QueryRowContext(ctx, query, auctionID).Scan(&stats.Count, &stats.MaxAmount); err != nil {
		return model.OfferStats{}, fmt.Errorf("get offer stats for auction %d: %w", auctionID, err)
	}
	return stats, nil
}

// TransitionOffer is a conditional single-row update guarded by the current status
func (r *PostgresRepo) TransitionOffer(ctx context.Context, offerID int64, from, to model.OfferStatus) (model.Offer, error) {
	query := `UPDATE offers SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING ` + offerColumns

	offer, err := scanOffer(r.db.QueryRowContext(ctx, query, to, offerID, from))
	if err == nil {
		return offer, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Offer{}, fmt.Errorf("transition offer %d: %w", offerID, translateErr(err))
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM offers WHERE id = $1)`, offerID).Scan(&exists); err != nil {
		return model.Offer{}, fmt.Errorf("transition offer %d: %w", offerID, err)
	}
	if !exists {
		return model.Offer{}, fmt.Errorf("transition offer %d: %w", offerID, auctionerrors.ErrOfferNotFound)
	}
	return model.Offer{}, fmt.Errorf("transition offer %d from %s: %w", offerID, from, auctionerrors.ErrOfferNotSubmitted)
}

// WithArtworkLock runs fn in a transaction holding a transaction-scoped advisory lock on the artwork
func (r *PostgresRepo) WithArtworkLock(ctx context.Context, artworkID int64, fn func(tx AuctionTx) error) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, artworkID); err != nil {
			return fmt.Errorf("lock artwork %d: %w", artworkID, translateErr(err))
		}
		return fn(&postgresTx{tx: tx})
	})
}

// WithAuctionLock runs fn in a transaction holding a row lock on the auction
func (r *PostgresRepo) WithAuctionLock(ctx context.Context, auctionID int64, fn func(tx AuctionTx) error) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		var id int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM auctions WHERE id = $1 FOR UPDATE`, auctionID).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("lock auction %d: %w", auctionID, auctionerrors.ErrAuctionNotFound)
		}
		if err != nil {
			return fmt.Errorf("lock auction %d: %w", auctionID, translateErr(err))
		}
		return fn(&postgresTx{tx: tx})
	})
}

func (r *PostgresRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", translateErr(err))
	}
	return nil
}

// postgresTx is the AuctionTx bound to an open transaction
type postgresTx struct {
	tx *sql.Tx
}

func (t *postgresTx) GetAuction(ctx context.Context, auctionID int64) (model.Auction, error) {
	return getAuction(ctx, t.tx, auctionID)
}

func (t *postgresTx) ListAuctionsByArtwork(ctx context.Context, artworkID int64) ([]model.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE artwork_id = $1 ORDER BY start_time`

	rows, err := t.tx.QueryContext(ctx, query, artworkID)
	if err != nil {
		return nil, fmt.Errorf("list auctions for artwork %d: %w", artworkID, err)
	}
	defer rows.Close()

	auctions := make([]model.Auction, 0)
	for rows.Next() {
		auction, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("list auctions for artwork %d: scan: %w", artworkID, err)
		}
		auctions = append(auctions, auction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list auctions for artwork %d: %w", artworkID, err)
	}
	return auctions, nil
}

func (t *postgresTx) CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error) {
	query := `INSERT INTO auctions (artwork_id, start_time, end_time, starting_price, currency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := t.tx.QueryRowContext(
		ctx,
		query,
		auction.ArtworkID,
		auction.StartTime,
		auction.EndTime,
		auction.StartingPrice,
		auction.Currency,
	).Scan(&auction.ID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("create auction on artwork %d: %w", auction.ArtworkID, translateErr(err))
	}
	return auction, nil
}

func (t *postgresTx) UpdateAuctionEndTime(ctx context.Context, auctionID int64, endTime time.Time) (model.Auction, error) {
	query := `UPDATE auctions SET end_time = $1 WHERE id = $2 RETURNING ` + auctionColumns

	auction, err := scanAuction(t.tx.QueryRowContext(ctx, query, endTime, auctionID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("update auction %d: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("update auction %d: %w", auctionID, translateErr(err))
	}
	return auction, nil
}

func (t *postgresTx) MaxOfferAmount(ctx context.Context, auctionID int64) (decimal.Decimal, error) {
	var highest decimal.Decimal
	err := t.tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(amount), 0) FROM offers WHERE auction_id = $1`, auctionID).Scan(&highest)
	if err != nil {
		return decimal.Zero, fmt.Errorf("max offer for auction %d: %w", auctionID, err)
	}
	return highest, nil
}

func (t *postgresTx) CreateOffer(ctx context.Context, offer model.Offer) (model.Offer, error) {
	query := `INSERT INTO offers (auction_id, user_id, amount, submitted_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := t.tx.QueryRowContext(
		ctx,
		query,
		offer.AuctionID,
		offer.UserID,
		offer.Amount,
		offer.Timestamp,
		offer.Status,
	).Scan(&offer.ID)
	if err != nil {
		return model.Offer{}, fmt.Errorf("create offer on auction %d: %w", offer.AuctionID, translateErr(err))
	}
	return offer, nil
}

func getAuction(ctx context.Context, q querier, auctionID int64) (model.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE id = $1`

	auction, err := scanAuction(q.QueryRowContext(ctx, query, auctionID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("get auction %d: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("get auction %d: %w", auctionID, err)
	}
	return auction, nil
}

func scanAuction(row rowScanner) (model.Auction, error) {
	var a model.Auction
	err := row.Scan(&a.ID, &a.ArtworkID, &a.StartTime, &a.EndTime, &a.StartingPrice, &a.Currency)
	return a, err
}

func scanOffer(row rowScanner) (model.Offer, error) {
	var o model.Offer
	err := row.Scan(&o.ID, &o.AuctionID, &o.UserID, &o.Amount, &o.Timestamp, &o.Status)
	return o, err
}

// translateErr turns constraint and lock failures into ErrStoreConflict
func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation, pgExclusionViolation, pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
		return fmt.Errorf("%s (%s): %w", pgErr.Message, pgErr.ConstraintName, auctionerrors.ErrStoreConflict)
	case pgCheckViolation:
		return fmt.Errorf("%s (%s): %w", pgErr.Message, pgErr.ConstraintName, auctionerrors.ErrBadRequest)
	}
	return err
}

// PostgresArtworkLookup resolves artwork owners from the shared artworks table
type PostgresArtworkLookup struct {
	db *sql.DB
}

// NewPostgresArtworkLookup creates a new PostgresArtworkLookup
func NewPostgresArtworkLookup(db *sql.DB) *PostgresArtworkLookup {
	return &PostgresArtworkLookup{db: db}
}

// GetArtwork implements ArtworkLookup
func (l *PostgresArtworkLookup) GetArtwork(ctx context.Context, artworkID int64) (model.Artwork, error) {
	artwork := model.Artwork{ID: artworkID}
	err := l.db.QueryRowContext(ctx, `SELECT owner_id FROM artworks WHERE id = $1`, artworkID).Scan(&artwork.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Artwork{}, fmt.Errorf("get artwork %d: %w", artworkID, auctionerrors.ErrArtworkNotFound)
	}
	if err != nil {
		return model.Artwork{}, fmt.Errorf("get artwork %d: %w", artworkID, err)
	}
	return artwork, nil
}
