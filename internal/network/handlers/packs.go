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

// NewPackResponse - преобразование модели хранилища в модель выдачи
func NewPackResponse(pack models.PackData) models.PackResponse {
	response := models.PackResponse{
		ID:                    pack.ID,
		PackID:                pack.PackID,
		StoreName:             pack.StoreName,
		Status:                pack.Status,
		Card:                  pack.Card,
		Amount:                pack.Amount.String(),
		AmountWithoutDiscount: pack.AmountWithoutDiscount.String(),
		Quantity:              pack.Quantity,
		Billing:               pack.Billing,
		Email:                 pack.Email,
		Password:              pack.Password,
		ProductType:           pack.ProductType,
		TrackNumbers:          pack.TrackNumbers,
		Comments:              pack.Comments,
		DropID:                pack.DropID,
		AddressID:             pack.AddressID,
		SkupID:                pack.SkupID,
		CreatedAt:             pack.CreatedAt.Format(time.RFC3339),
	}
	if pack.DeliveredAt != nil {
		deliveredAt := pack.DeliveredAt.Format(time.RFC3339)
		response.DeliveredAt = &deliveredAt
	}
	return response
}

// ListPacksHandler — получение списка посылок с фильтрами и поиском
func ListPacksHandler(s services.PacksService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filters := models.PackFilters{
			DropID:        query.Get("drop_id"),
			Status:        query.Get("status"),
			Billing:       query.Get("billing"),
			Skup:          query.Get("skup"),
			Store:         query.Get("store"),
			Search:        query.Get("search"),
			ShowReturning: query.Get("show_returning") == "true",
		}

		packs, err := s.ListPacks(r.Context(), filters)
		if err != nil {
			logger.Error("Failed to get packs:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		response := make([]models.PackResponse, 0, len(packs))
		for _, pack := range packs {
			response = append(response, NewPackResponse(pack))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// CreatePackHandler — создание посылки
func CreatePackHandler(s services.PacksService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.PackRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		pack, err := s.CreatePack(r.Context(), request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidPack):
				http.Error(w, "Invalid pack data", http.StatusBadRequest)
			default:
				logger.Error("Failed to create pack:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(NewPackResponse(*pack)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// UpdatePackHandler — частичное обновление полей посылки
func UpdatePackHandler(s services.PacksService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var request models.PackUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := s.UpdatePack(r.Context(), id, request); err != nil {
			switch {
			case errors.Is(err, services.ErrPackNotFound):
				http.Error(w, "Pack not found", http.StatusNotFound)
			case errors.Is(err, services.ErrInvalidPack):
				http.Error(w, "Invalid pack data", http.StatusBadRequest)
			default:
				logger.Error("Failed to update pack:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// UpdatePackStatusHandler — смена статуса посылки
func UpdatePackStatusHandler(s services.PacksService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var request models.PackStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := s.UpdatePackStatus(r.Context(), id, request.Status); err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownStatus):
				http.Error(w, "Unknown pack status", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrPackNotFound):
				http.Error(w, "Pack not found", http.StatusNotFound)
			default:
				logger.Error("Failed to update pack status:", zap.Error(err))
				http.Error(w, "Failed to update pack status", http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// DeletePackHandler — удаление посылки с переносом в архив
func DeletePackHandler(s services.PacksService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := s.DeletePack(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrPackNotFound):
				http.Error(w, "Pack not found", http.StatusNotFound)
			default:
				logger.Error("Failed to delete pack:", zap.Error(err))
				http.Error(w, "Failed to delete pack", http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
