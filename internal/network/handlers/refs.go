package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/models"
	"github.com/denmor86/packcrm/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ListRefsHandler — получение списка реф-процессов
func ListRefsHandler(s services.RefsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := models.RefFilters{
			Status: r.URL.Query().Get("status"),
			DropID: r.URL.Query().Get("drop_id"),
		}

		refs, err := s.ListRefProcesses(r.Context(), filters)
		if err != nil {
			logger.Error("Failed to get ref processes:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		response := make([]models.RefProcessResponse, 0, len(refs))
		for _, ref := range refs {
			response = append(response, models.RefProcessResponse{
				ID:                 ref.ID,
				PackID:             ref.PackID,
				PackName:           ref.PackName,
				StoreName:          ref.StoreName,
				TrackNumber:        ref.TrackNumber,
				Comments:           ref.Comments,
				DropID:             ref.DropID,
				Status:             ref.Status,
				DropPayment:        ref.DropPayment.String(),
				CarrierPayment:     ref.CarrierPayment.String(),
				AdditionalExpenses: ref.AdditionalExpenses.String(),
				BoxerExpenses:      ref.BoxerExpenses.String(),
				NetProfit:          ref.NetProfit.String(),
				CreatedAt:          ref.CreatedAt.Format(time.RFC3339),
			})
		}
		writeJSON(w, http.StatusOK, response)
	})
}

// UpdateRefHandler — обновление статуса и финансовых полей реф-процесса
func UpdateRefHandler(s services.RefsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var request models.RefUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := s.UpdateRefProcess(r.Context(), id, request); err != nil {
			switch {
			case errors.Is(err, services.ErrRefNotFound):
				http.Error(w, "Ref process not found", http.StatusNotFound)
			case errors.Is(err, services.ErrInvalidRefUpdate):
				http.Error(w, "Invalid ref process data", http.StatusBadRequest)
			default:
				logger.Error("Failed to update ref process:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
