package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/models"
	"github.com/denmor86/packcrm/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
	}
}

// AddDropHandler — добавление дропа
func AddDropHandler(s services.LookupsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.DropRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Name == "" {
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		drop, err := s.AddDrop(r.Context(), request)
		if err != nil {
			if errors.Is(err, services.ErrDuplicateName) {
				http.Error(w, "Name already exists", http.StatusConflict)
				return
			}
			logger.Error("Failed to add drop:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, models.DropResponse{ID: drop.ID, Name: drop.Name, Geo: drop.Geo})
	})
}

// ListDropsHandler — получение списка дропов
func ListDropsHandler(s services.LookupsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		drops, err := s.ListDrops(r.Context())
		if err != nil {
			logger.Error("Failed to get drops:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		response := make([]models.DropResponse, 0, len(drops))
		for _, drop := range drops {
			response = append(response, models.DropResponse{ID: drop.ID, Name: drop.Name, Geo: drop.Geo})
		}
		writeJSON(w, http.StatusOK, response)
	})
}

// AddAddressHandler — добавление адреса дропу
func AddAddressHandler(s services.LookupsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dropID := chi.URLParam(r, "id")

		var request models.AddressRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Address == "" {
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		address, err := s.AddAddress(r.Context(), dropID, request)
		if err != nil {
			if errors.Is(err, services.ErrDropNotFound) {
				http.Error(w, "Drop not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to add address:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, models.AddressResponse{
			ID:             address.ID,
			DropID:         address.DropID,
			Geo:            address.Geo,
			DeliveryMethod: address.DeliveryMethod,
			Address:        address.Address,
		})
	})
}

// ListAddressesHandler — получение адресов дропа
func ListAddressesHandler(s services.LookupsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dropID := chi.URLParam(r, "id")

		addresses, err := s.ListAddresses(r.Context(), dropID)
		if err != nil {
			logger.Error("Failed to get addresses:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		response := make([]models.AddressResponse, 0, len(addresses))
		for _, address := range addresses {
			response = append(response, models.AddressResponse{
				ID:             address.ID,
				DropID:         address.DropID,
				Geo:            address.Geo,
				DeliveryMethod: address.DeliveryMethod,
				Address:        address.Address,
			})
		}
		writeJSON(w, http.StatusOK, response)
	})
}

// добавление справочного значения (биллинг или скуп)
func addLookupHandler(add func(r *http.Request, name string) (*models.LookupData, error)) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.LookupRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Name == "" {
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		lookup, err := add(r, request.Name)
		if err != nil {
			if errors.Is(err, services.ErrDuplicateName) {
				http.Error(w, "Name already exists", http.StatusConflict)
				return
			}
			logger.Error("Failed to add lookup:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, models.LookupResponse{ID: lookup.ID, Name: lookup.Name})
	})
}

// получение справочника (биллинги или скупы)
func listLookupsHandler(list func(r *http.Request) ([]models.LookupData, error)) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lookups, err := list(r)
		if err != nil {
			logger.Error("Failed to get lookups:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		response := make([]models.LookupResponse, 0, len(lookups))
		for _, lookup := range lookups {
			response = append(response, models.LookupResponse{ID: lookup.ID, Name: lookup.Name})
		}
		writeJSON(w, http.StatusOK, response)
	})
}

// AddBillingHandler — добавление биллинга
func AddBillingHandler(s services.LookupsService) http.HandlerFunc {
	return addLookupHandler(func(r *http.Request, name string) (*models.LookupData, error) {
		return s.AddBilling(r.Context(), name)
	})
}

// ListBillingsHandler — получение списка биллингов
func ListBillingsHandler(s services.LookupsService) http.HandlerFunc {
	return listLookupsHandler(func(r *http.Request) ([]models.LookupData, error) {
		return s.ListBillings(r.Context())
	})
}

// AddSkupHandler — добавление скупа
func AddSkupHandler(s services.LookupsService) http.HandlerFunc {
	return addLookupHandler(func(r *http.Request, name string) (*models.LookupData, error) {
		return s.AddSkup(r.Context(), name)
	})
}

// ListSkupsHandler — получение списка скупов
func ListSkupsHandler(s services.LookupsService) http.HandlerFunc {
	return listLookupsHandler(func(r *http.Request) ([]models.LookupData, error) {
		return s.ListSkups(r.Context())
	})
}
