package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счётчики жизненного цикла посылок
var (
	PacksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "packcrm_packs_created_total",
		Help: "Количество созданных посылок",
	})
	PacksDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "packcrm_packs_delivered_total",
		Help: "Количество посылок, переведённых в Доставлено",
	})
	PacksDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "packcrm_packs_deleted_total",
		Help: "Количество удалённых (заархивированных) посылок",
	})
	ArchivesCleaned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "packcrm_archives_cleaned_total",
		Help: "Количество архивных записей, удалённых по сроку хранения",
	})
)
