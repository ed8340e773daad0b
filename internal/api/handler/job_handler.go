package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/market-system/internal/core/domain"
	"github.com/jobhive/market-system/internal/core/ports"
	"github.com/jobhive/market-system/internal/core/query"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Search handles GET /all-jobs, the anonymous listing.
//
// @Summary      Public job search
// @Tags         jobs
// @Produce      json
// @Param        search  query     string  false  "Title substring (case-insensitive)"
// @Param        filter  query     string  false  "Category equality filter"
// @Param        sort    query     string  false  "Deadline order: Asc for ascending, anything else descending"
// @Param        page    query     int     false  "Page index (0-based)"
// @Param        number  query     int     false  "Page size (0 = unlimited)"
// @Success      200     {array}   domain.Job
// @Failure      500     {object}  errorResponse
// @Router       /all-jobs [get]
func (h *JobHandler) Search(c echo.Context) error {
	q := query.PublicJobSearch(c.QueryParams())
	jobs, err := h.service.Search(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// List handles GET /market-jobs, the authenticated listing. Exactly one of
// the filter parameters applies, in email > filter > search precedence.
//
// @Summary      List jobs by buyer email, category, or title
// @Tags         jobs
// @Produce      json
// @Param        email   query     string  false  "Buyer email equality filter (highest precedence)"
// @Param        filter  query     string  false  "Category equality filter"
// @Param        search  query     string  false  "Title substring (lowest precedence)"
// @Success      200     {array}   domain.Job
// @Failure      401     {object}  errorResponse
// @Router       /market-jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	f := query.OwnerJobFilter(c.QueryParams())
	jobs, err := h.service.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get handles GET /market-jobs/:id.
//
// @Summary      Fetch a job by id
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  domain.Job
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /market-jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Create handles POST /market-jobs. The document is stored as submitted;
// no field-level validation is applied.
//
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Job  true  "Job document"
// @Success      201   {object}  ports.InsertResult
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /market-jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var job domain.Job
	if err := c.Bind(&job); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	res, err := h.service.Create(c.Request().Context(), job)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}

// Replace handles PUT /market-jobs/:id, an upsert of the non-id fields.
//
// @Summary      Replace a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string      true  "Job id"
// @Param        body  body      domain.Job  true  "Replacement fields (id ignored)"
// @Success      200   {object}  ports.UpdateResult
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /market-jobs/{id} [put]
func (h *JobHandler) Replace(c echo.Context) error {
	var job domain.Job
	if err := c.Bind(&job); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	res, err := h.service.Replace(c.Request().Context(), c.Param("id"), job)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /market-jobs/:id.
//
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  ports.DeleteResult
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /market-jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	res, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
