package report

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/frahmantamala/hotel-management/internal/transport"
	"github.com/frahmantamala/hotel-management/pkg/logger"
)

type ServiceAPI interface {
	MonthlyReport(year int) (*MonthlyReport, error)
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

// Monthly handles GET /reports/monthly?year=YYYY. Defaults to the current
// year when the parameter is absent.
func (h *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2100 {
			h.WriteError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = parsed
	}

	report, err := h.Service.MonthlyReport(year)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, report)
}
