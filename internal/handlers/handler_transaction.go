package handlers

import (
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers all transaction routes. Access rules live in the service.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listMine)
		txns.POST("", h.create)
		txns.GET("/summary", h.mySummary)
		txns.GET("/summary/category", h.myCategorySummary)
		txns.GET("/all", h.listAll)                  // Admin only
		txns.GET("/global-summary", h.globalSummary) // Admin only
		txns.GET("/daily-summary", h.dailySummary)   // Admin only
		txns.GET("/:id", h.get)                      // Owner or admin
		txns.PUT("/:id", h.update)                   // Owner or admin
		txns.DELETE("/:id", h.delete)                // Owner or admin
	}
}

// respondPage writes a transaction page with its size and continuation token.
func respondPage(c *gin.Context, page *domain.TransactionPage) {
	body := dto.ToTransactionListResponse(page)
	c.JSON(http.StatusOK, dto.OKList(body, len(body.Transactions), page.NextToken))
}

// listMine godoc
// @Summary List own transactions
// @Description Lists the caller's transactions, newest first, with the aggregates of the page.
// @Tags transactions
// @Produce json
// @Param type query string false "inflow or outflow"
// @Param category query string false "Exact category"
// @Param startDate query string false "YYYY-MM-DD, inclusive"
// @Param endDate query string false "YYYY-MM-DD, inclusive"
// @Param limit query int false "Page size, at most 500"
// @Param nextToken query string false "Continuation token from a previous page"
// @Success 200 {object} dto.Response{data=dto.TransactionListResponse}
// @Failure 400 {object} dto.Response "Invalid filter"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Security BearerAuth
// @Router /api/v1/transactions [get]
func (h *transactionHandler) listMine(c *gin.Context) {
	var params dto.ListTransactionsParams
	if !bindQuery(c, &params) {
		return
	}
	page, err := h.transactionService.ListMine(c.Request.Context(), middleware.CallerFromContext(c), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, page)
}

// listAll godoc
// @Summary List all transactions
// @Description Lists transactions across every account. Admin only.
// @Tags transactions
// @Produce json
// @Param type query string false "inflow or outflow"
// @Param category query string false "Exact category"
// @Param startDate query string false "YYYY-MM-DD, inclusive"
// @Param endDate query string false "YYYY-MM-DD, inclusive"
// @Param userId query string false "Owner user ID"
// @Param limit query int false "Page size, at most 500"
// @Param nextToken query string false "Continuation token from a previous page"
// @Success 200 {object} dto.Response{data=dto.TransactionListResponse}
// @Failure 403 {object} dto.Response "Admin required"
// @Security BearerAuth
// @Router /api/v1/transactions/all [get]
func (h *transactionHandler) listAll(c *gin.Context) {
	var params dto.ListTransactionsParams
	if !bindQuery(c, &params) {
		return
	}
	page, err := h.transactionService.ListAll(c.Request.Context(), middleware.CallerFromContext(c), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, page)
}

// get godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 403 {object} dto.Response "Not the owner"
// @Failure 404 {object} dto.Response "Transaction not found"
// @Security BearerAuth
// @Router /api/v1/transactions/{id} [get]
func (h *transactionHandler) get(c *gin.Context) {
	txn, err := h.transactionService.Get(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(*txn)))
}

// create godoc
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction details"
// @Success 201 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Security BearerAuth
// @Router /api/v1/transactions [post]
func (h *transactionHandler) create(c *gin.Context) {
	var req dto.TransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	txn, err := h.transactionService.Create(c.Request.Context(), middleware.CallerFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OKWithMessage("Transaction created", dto.ToTransactionResponse(*txn)))
}

// update godoc
// @Summary Update a transaction
// @Description Replaces every mutable field. The owner never changes.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.TransactionRequest true "Transaction details"
// @Success 200 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 403 {object} dto.Response "Not the owner"
// @Failure 404 {object} dto.Response "Transaction not found"
// @Security BearerAuth
// @Router /api/v1/transactions/{id} [put]
func (h *transactionHandler) update(c *gin.Context) {
	var req dto.TransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	txn, err := h.transactionService.Update(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKWithMessage("Transaction updated", dto.ToTransactionResponse(*txn)))
}

// delete godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.Response "Not the owner"
// @Failure 404 {object} dto.Response "Transaction not found"
// @Security BearerAuth
// @Router /api/v1/transactions/{id} [delete]
func (h *transactionHandler) delete(c *gin.Context) {
	if err := h.transactionService.Delete(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKWithMessage("Transaction deleted", nil))
}

// mySummary godoc
// @Summary Own summary
// @Description Total inflow, outflow, balance and count over all of the caller's transactions.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.Response{data=dto.SummaryResponse}
// @Security BearerAuth
// @Router /api/v1/transactions/summary [get]
func (h *transactionHandler) mySummary(c *gin.Context) {
	summary, err := h.transactionService.MySummary(c.Request.Context(), middleware.CallerFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSummaryResponse(*summary)))
}

// myCategorySummary godoc
// @Summary Own summary by category
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.CategorySummaryResponse}
// @Security BearerAuth
// @Router /api/v1/transactions/summary/category [get]
func (h *transactionHandler) myCategorySummary(c *gin.Context) {
	rows, err := h.transactionService.MyCategorySummary(c.Request.Context(), middleware.CallerFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKList(dto.ToCategorySummaryResponseList(rows), len(rows), nil))
}

// globalSummary godoc
// @Summary Global summary
// @Description Aggregates every transaction in the system. Admin only.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.Response{data=dto.GlobalSummaryResponse}
// @Failure 403 {object} dto.Response "Admin required"
// @Security BearerAuth
// @Router /api/v1/transactions/global-summary [get]
func (h *transactionHandler) globalSummary(c *gin.Context) {
	summary, err := h.transactionService.GlobalSummary(c.Request.Context(), middleware.CallerFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToGlobalSummaryResponse(*summary)))
}

// dailySummary godoc
// @Summary Daily summary
// @Description Buckets the last days calendar days, newest first. Admin only.
// @Tags transactions
// @Produce json
// @Param days query int false "Window in days, default 30, at most 366"
// @Success 200 {object} dto.Response{data=[]dto.DailySummaryResponse}
// @Failure 400 {object} dto.Response "Invalid window"
// @Failure 403 {object} dto.Response "Admin required"
// @Security BearerAuth
// @Router /api/v1/transactions/daily-summary [get]
func (h *transactionHandler) dailySummary(c *gin.Context) {
	var params dto.DailySummaryParams
	if !bindQuery(c, &params) {
		return
	}
	rows, err := h.transactionService.DailySummary(c.Request.Context(), middleware.CallerFromContext(c), params.Days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKList(dto.ToDailySummaryResponseList(rows), len(rows), nil))
}
