package handlers

import (
	"net/http"
	"time"

	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/models"
	"github.com/denmor86/packcrm/internal/services"
	"go.uber.org/zap"
)

// ListArchivesHandler — выдача архива удалённых посылок (только чтение)
func ListArchivesHandler(s services.ArchivesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		archives, err := s.ListArchives(r.Context())
		if err != nil {
			logger.Error("Failed to get archives:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		response := make([]models.ArchiveResponse, 0, len(archives))
		for _, archive := range archives {
			response = append(response, models.ArchiveResponse{
				ID:                archive.ID,
				OriginalPackID:    archive.OriginalPackID,
				PackID:            archive.PackID,
				StoreName:         archive.StoreName,
				Status:            archive.Status,
				Card:              archive.Card,
				Amount:            archive.Amount.String(),
				Quantity:          archive.Quantity,
				ProductType:       archive.ProductType,
				TrackNumbers:      archive.TrackNumbers,
				Comments:          archive.Comments,
				OriginalCreatedAt: archive.OriginalCreatedAt.Format(time.RFC3339),
				ArchivedAt:        archive.ArchivedAt.Format(time.RFC3339),
			})
		}
		writeJSON(w, http.StatusOK, response)
	})
}
