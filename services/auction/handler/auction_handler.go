package handler

//go:generate mockgen -source=auction_handler.go -destination=mock_auction_handler.go -package=handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	auction "artwork-auctions/internal/auctionService"
	model "artwork-auctions/internal/models"
	"artwork-auctions/services/auction/helpers"
	"artwork-auctions/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AuctionServiceInterface interface {
	StartAuction(ctx context.Context, p auction.StartAuctionParams) (model.Auction, error)
	UpdateAuctionEndTime(ctx context.Context, auctionID, requesterID int64, newEndTime time.Time) (model.Auction, error)
	GetActiveAuction(ctx context.Context, artworkID int64) (model.ActiveAuction, bool, error)
	MakeOffer(ctx context.Context, auctionID, bidderID int64, amount decimal.Decimal) (model.Offer, error)
	GetOffers(ctx context.Context, auctionID, requesterID int64) ([]model.Offer, error)
	GetMaxOffer(ctx context.Context, auctionID int64) (decimal.Decimal, error)
	AcceptOffer(ctx context.Context, offerID, requesterID int64) (model.Offer, error)
	RejectOffer(ctx context.Context, offerID, requesterID int64) (model.Offer, error)
	WithdrawOffer(ctx context.Context, offerID, requesterID int64) (model.Offer, error)
	GetHighStakesAuctions(ctx context.Context, count int) ([]model.HighStakesAuction, error)
}

// HandlerConfig bounds the discover page size
type HandlerConfig struct {
	DiscoverDefaultCount int
	DiscoverMaxCount     int
}

type AuctionHandler struct {
	service AuctionServiceInterface
	cfg     HandlerConfig
}

var errInvalidCount = errors.New("count must be a positive integer")

func NewAuctionHandler(service AuctionServiceInterface, cfg HandlerConfig) *AuctionHandler {
	if cfg.DiscoverDefaultCount <= 0 {
		cfg.DiscoverDefaultCount = 10
	}
	if cfg.DiscoverMaxCount < cfg.DiscoverDefaultCount {
		cfg.DiscoverMaxCount = cfg.DiscoverDefaultCount
	}
	return &AuctionHandler{service: service, cfg: cfg}
}

// requester resolves the caller or writes a 401
func requester(c *gin.Context, handlerName string) (int64, bool) {
	id, ok := helpers.RequesterID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing requester identity"), "authentication required")
		utils.Warn(handlerName+": request without identity", map[string]any{"path": c.FullPath()})
	}
	return id, ok
}

// StartAuctionHandler handles POST /artwork/:artworkId/auction/start
func (h *AuctionHandler) StartAuctionHandler(c *gin.Context) {
	requesterID, ok := requester(c, "StartAuctionHandler")
	if !ok {
		return
	}
	artworkID, err := helpers.ParseIDParam(c, "artworkId")
	if err != nil {
		helpers.HandleIDError(c, "StartAuctionHandler", err)
		return
	}

	var req helpers.StartAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "StartAuctionHandler", err)
		return
	}

	created, err := h.service.StartAuction(c.Request.Context(), auction.StartAuctionParams{
		ArtworkID:     artworkID,
		RequesterID:   requesterID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		StartingPrice: req.StartingPrice,
		Currency:      model.Currency(req.Currency),
	})
	if err != nil {
		helpers.RespondError(c, err)
		utils.Error("StartAuctionHandler: failed to start auction", map[string]any{
			"handler":      "StartAuctionHandler",
			"artwork_id":   artworkID,
			"requester_id": requesterID,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(created), "auction scheduled successfully")
	helpers.LogSuccess("StartAuctionHandler", "auction scheduled successfully", map[string]any{
		"auction_id":   created.ID,
		"artwork_id":   created.ArtworkID,
		"requester_id": requesterID,
		"start_time":   created.StartTime,
		"end_time":     created.EndTime,
	})
}

// UpdateAuctionHandler handles PUT /auction/:auctionId
func (h *AuctionHandler) UpdateAuctionHandler(c *gin.Context) {
	requesterID, ok := requester(c, "UpdateAuctionHandler")
	if !ok {
		return
	}
	auctionID, err := helpers.ParseIDParam(c, "auctionId")
	if err != nil {
		helpers.HandleIDError(c, "UpdateAuctionHandler", err)
		return
	}

	var req helpers.UpdateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	updated, err := h.service.UpdateAuctionEndTime(c.Request.Context(), auctionID, requesterID, req.EndTime)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Error("UpdateAuctionHandler: failed to update auction", map[string]any{
			"handler":      "UpdateAuctionHandler",
			"auction_id":   auctionID,
			"requester_id": requesterID,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(updated), "auction updated successfully")
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{
		"auction_id":   updated.ID,
		"requester_id": requesterID,
		"end_time":     updated.EndTime,
	})
}

// GetActiveAuctionHandler handles GET /artwork/:artworkId/auction/active
func (h *AuctionHandler) GetActiveAuctionHandler(c *gin.Context) {
	artworkID, err := helpers.ParseIDParam(c, "artworkId")
	if err != nil {
		helpers.HandleIDError(c, "GetActiveAuctionHandler", err)
		return
	}

	active, found, err := h.service.GetActiveAuction(c.Request.Context(), artworkID)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Warn("GetActiveAuctionHandler: error retrieving active auction", map[string]any{"artwork_id": artworkID, "error": err.Error()})
		return
	}

	if !found {
		utils.JSONResponse(c, http.StatusOK, gin.H{"active": false}, "no active auction")
		utils.Info("GetActiveAuctionHandler: no active auction", map[string]any{"artwork_id": artworkID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"active":  true,
		"auction": helpers.NewActiveAuctionResponse(active),
	}, "active auction retrieved successfully")
	helpers.LogSuccess("GetActiveAuctionHandler", "active auction retrieved successfully", map[string]any{
		"artwork_id":    artworkID,
		"auction_id":    active.ID,
		"current_price": active.CurrentPrice,
	})
}

// MakeOfferHandler handles POST /auction/:auctionId/make-an-offer
func (h *AuctionHandler) MakeOfferHandler(c *gin.Context) {
	bidderID, ok := requester(c, "MakeOfferHandler")
	if !ok {
		return
	}
	auctionID, err := helpers.ParseIDParam(c, "auctionId")
	if err != nil {
		helpers.HandleIDError(c, "MakeOfferHandler", err)
		return
	}

	var req helpers.MakeOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "MakeOfferHandler", err)
		return
	}

	offer, err := h.service.MakeOffer(c.Request.Context(), auctionID, bidderID, req.Amount)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Error("MakeOfferHandler: failed to make offer", map[string]any{
			"handler":    "MakeOfferHandler",
			"auction_id": auctionID,
			"user_id":    bidderID,
			"amount":     req.Amount.String(),
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewOfferResponse(offer), "offer submitted successfully")
	helpers.LogSuccess("MakeOfferHandler", "offer submitted successfully", map[string]any{
		"offer_id":   offer.ID,
		"auction_id": offer.AuctionID,
		"user_id":    bidderID,
		"amount":     offer.Amount.String(),
	})
}

// GetOffersHandler handles GET /auction/:auctionId/offers
func (h *AuctionHandler) GetOffersHandler(c *gin.Context) {
	requesterID, ok := requester(c, "GetOffersHandler")
	if !ok {
		return
	}
	auctionID, err := helpers.ParseIDParam(c, "auctionId")
	if err != nil {
		helpers.HandleIDError(c, "GetOffersHandler", err)
		return
	}

	offers, err := h.service.GetOffers(c.Request.Context(), auctionID, requesterID)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Warn("GetOffersHandler: error retrieving offers", map[string]any{
			"auction_id":   auctionID,
			"requester_id": requesterID,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewOfferResponses(offers), "offers retrieved successfully")
	helpers.LogSuccess("GetOffersHandler", "offers retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(offers),
	})
}

// GetMaxOfferHandler handles GET /auction/:auctionId/offers/max
func (h *AuctionHandler) GetMaxOfferHandler(c *gin.Context) {
	auctionID, err := helpers.ParseIDParam(c, "auctionId")
	if err != nil {
		helpers.HandleIDError(c, "GetMaxOfferHandler", err)
		return
	}

	highest, err := h.service.GetMaxOffer(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Warn("GetMaxOfferHandler: error retrieving max offer", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	resp := helpers.MaxOfferResponse{AuctionID: auctionID, MaxAmount: highest}
	utils.JSONResponse(c, http.StatusOK, resp, "max offer retrieved successfully")
	helpers.LogSuccess("GetMaxOfferHandler", "max offer retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"max_amount": highest.String(),
	})
}

type offerTransition func(ctx context.Context, offerID, requesterID int64) (model.Offer, error)

// AcceptOfferHandler handles PUT /offer/:offerId/accept
func (h *AuctionHandler) AcceptOfferHandler(c *gin.Context) {
	h.transitionOffer(c, "AcceptOfferHandler", "offer accepted successfully", h.service.AcceptOffer)
}

// RejectOfferHandler handles PUT /offer/:offerId/reject
func (h *AuctionHandler) RejectOfferHandler(c *gin.Context) {
	h.transitionOffer(c, "RejectOfferHandler", "offer rejected successfully", h.service.RejectOffer)
}

// WithdrawOfferHandler handles PUT /offer/:offerId/withdraw
func (h *AuctionHandler) WithdrawOfferHandler(c *gin.Context) {
	h.transitionOffer(c, "WithdrawOfferHandler", "offer withdrawn successfully", h.service.WithdrawOffer)
}

func (h *AuctionHandler) transitionOffer(c *gin.Context, handlerName, successMsg string, apply offerTransition) {
	requesterID, ok := requester(c, handlerName)
	if !ok {
		return
	}
	offerID, err := helpers.ParseIDParam(c, "offerId")
	if err != nil {
		helpers.HandleIDError(c, handlerName, err)
		return
	}

	offer, err := apply(c.Request.Context(), offerID, requesterID)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Error(handlerName+": failed to transition offer", map[string]any{
			"handler":      handlerName,
			"offer_id":     offerID,
			"requester_id": requesterID,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewOfferResponse(offer), successMsg)
	helpers.LogSuccess(handlerName, successMsg, map[string]any{
		"offer_id":     offer.ID,
		"auction_id":   offer.AuctionID,
		"requester_id": requesterID,
		"status":       offer.Status,
	})
}

// DiscoverHandler handles GET /discover?count=N
func (h *AuctionHandler) DiscoverHandler(c *gin.Context) {
	count, err := h.discoverCount(c.Query("count"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid count")
		utils.Warn("DiscoverHandler: invalid count", map[string]any{"count": c.Query("count")})
		return
	}

	ranked, err := h.service.GetHighStakesAuctions(c.Request.Context(), count)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Warn("DiscoverHandler: error ranking auctions", map[string]any{"count": count, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewDiscoverResponse(ranked), "discover feed retrieved successfully")
	helpers.LogSuccess("DiscoverHandler", "discover feed retrieved successfully", map[string]any{
		"count":    count,
		"returned": len(ranked),
	})
}

// discoverCount applies the default for an empty query and clamps to the maximum
func (h *AuctionHandler) discoverCount(raw string) (int, error) {
	if raw == "" {
		return h.cfg.DiscoverDefaultCount, nil
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidCount, raw)
	}
	return min(count, h.cfg.DiscoverMaxCount), nil
}
