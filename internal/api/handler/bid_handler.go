package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/market-system/internal/core/domain"
	"github.com/jobhive/market-system/internal/core/ports"
	"github.com/jobhive/market-system/internal/core/query"
)

// BidHandler handles HTTP requests for bids.
type BidHandler struct {
	service ports.BidService
}

func NewBidHandler(service ports.BidService) *BidHandler {
	return &BidHandler{service: service}
}

// List handles GET /market-bids, filtered by bidder email or buyer email
// (bidder email wins when both are present).
//
// @Summary      List bids by bidder or buyer email
// @Tags         bids
// @Produce      json
// @Param        email        query     string  false  "Bidder email equality filter (highest precedence)"
// @Param        buyer_email  query     string  false  "Buyer email equality filter"
// @Success      200          {array}   domain.Bid
// @Failure      401          {object}  errorResponse
// @Router       /market-bids [get]
func (h *BidHandler) List(c echo.Context) error {
	f := query.BidListFilter(c.QueryParams())
	bids, err := h.service.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bids)
}

// Place handles POST /market-bids. A bidder may apply to a given job at
// most once; a second submission is rejected with 400.
//
// @Summary      Place a bid
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Bid  true  "Bid document (email and job_id required)"
// @Success      201   {object}  ports.InsertResult
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /market-bids [post]
func (h *BidHandler) Place(c echo.Context) error {
	var bid domain.Bid
	if err := c.Bind(&bid); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&bid); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res, err := h.service.Place(c.Request().Context(), bid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}

// Update handles PATCH /market-bids/:id, an upsert-merge of the submitted
// fields.
//
// @Summary      Update a bid
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        id    path      string      true  "Bid id"
// @Param        body  body      domain.Bid  true  "Fields to merge (id ignored)"
// @Success      200   {object}  ports.UpdateResult
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /market-bids/{id} [patch]
func (h *BidHandler) Update(c echo.Context) error {
	var bid domain.Bid
	if err := c.Bind(&bid); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	res, err := h.service.Update(c.Request().Context(), c.Param("id"), bid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
