package accounting

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/hotel-management/internal/transport"
	"github.com/frahmantamala/hotel-management/pkg/logger"
)

type ServiceAPI interface {
	ListByKind(kind string, limit, offset int) ([]*Transaction, int64, error)
	Create(kind string, dto TransactionDTO) (*Transaction, error)
	Update(kind string, id int64, dto TransactionDTO) (*Transaction, error)
	Delete(kind string, id int64) error
	DailySummary(date time.Time) (*DailySummary, error)
	WeeklySummary(date time.Time) (*WeeklySummary, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// ListIncomes handles GET /accounting/incomes.
func (h *Handler) ListIncomes(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, KindIncome)
}

// ListExpenses handles GET /accounting/expenses.
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, KindExpense)
}

// CreateIncome handles POST /accounting/incomes.
func (h *Handler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, KindIncome)
}

// CreateExpense handles POST /accounting/expenses.
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, KindExpense)
}

// UpdateIncome handles PUT /accounting/incomes/{id}.
func (h *Handler) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, KindIncome)
}

// UpdateExpense handles PUT /accounting/expenses/{id}.
func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, KindExpense)
}

// DeleteIncome handles DELETE /accounting/incomes/{id}.
func (h *Handler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, KindIncome)
}

// DeleteExpense handles DELETE /accounting/expenses/{id}.
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, KindExpense)
}

// DailySummary handles GET /accounting/summary/daily?date=YYYY-MM-DD.
func (h *Handler) DailySummary(w http.ResponseWriter, r *http.Request) {
	date, ok := h.dateParam(w, r)
	if !ok {
		return
	}

	summary, err := h.Service.DailySummary(date)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, summary)
}

// WeeklySummary handles GET /accounting/summary/weekly?date=YYYY-MM-DD.
func (h *Handler) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	date, ok := h.dateParam(w, r)
	if !ok {
		return
	}

	summary, err := h.Service.WeeklySummary(date)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, kind string) {
	page := transport.PaginationFromRequest(r)

	transactions, total, err := h.Service.ListByKind(kind, page.Limit(), page.Offset())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transport.PaginatedResponse{
		Data:       transactions,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: total,
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, kind string) {
	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.Service.Create(kind, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, tx)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, kind string) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.Service.Update(kind, id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, tx)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, kind string) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(kind, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid transaction id")
		return 0, false
	}
	return id, true
}

func (h *Handler) dateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now(), true
	}
	date, err := time.Parse(DateFormat, raw)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}
