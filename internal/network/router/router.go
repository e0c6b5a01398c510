package router

import (
	"github.com/denmor86/packcrm/internal/config"
	"github.com/denmor86/packcrm/internal/network/handlers"
	"github.com/denmor86/packcrm/internal/network/middleware"
	"github.com/denmor86/packcrm/internal/services"
	"github.com/denmor86/packcrm/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	Config   config.Config
	Packs    services.PacksService
	Lookups  services.LookupsService
	Refs     services.RefsService
	Archives services.ArchivesService
}

func NewRouter(config config.Config, storage storage.IStorage) *Router {
	return &Router{
		Config:   config,
		Packs:    services.NewPacks(storage),
		Lookups:  services.NewLookups(storage),
		Refs:     services.NewRefs(storage),
		Archives: services.NewArchives(storage),
	}
}

func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RateLimit(router.Config.Server.RateLimit))
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/packs", func(r chi.Router) {
			r.Get("/", handlers.ListPacksHandler(router.Packs))
			r.Post("/", handlers.CreatePackHandler(router.Packs))
			r.Patch("/{id}", handlers.UpdatePackHandler(router.Packs))
			r.Patch("/{id}/status", handlers.UpdatePackStatusHandler(router.Packs))
			r.Delete("/{id}", handlers.DeletePackHandler(router.Packs))
		})
		r.Route("/drops", func(r chi.Router) {
			r.Get("/", handlers.ListDropsHandler(router.Lookups))
			r.Post("/", handlers.AddDropHandler(router.Lookups))
			r.Get("/{id}/addresses", handlers.ListAddressesHandler(router.Lookups))
			r.Post("/{id}/addresses", handlers.AddAddressHandler(router.Lookups))
		})
		r.Route("/billings", func(r chi.Router) {
			r.Get("/", handlers.ListBillingsHandler(router.Lookups))
			r.Post("/", handlers.AddBillingHandler(router.Lookups))
		})
		r.Route("/skups", func(r chi.Router) {
			r.Get("/", handlers.ListSkupsHandler(router.Lookups))
			r.Post("/", handlers.AddSkupHandler(router.Lookups))
		})
		r.Route("/refs", func(r chi.Router) {
			r.Get("/", handlers.ListRefsHandler(router.Refs))
			r.Patch("/{id}", handlers.UpdateRefHandler(router.Refs))
		})
		r.Get("/archive", handlers.ListArchivesHandler(router.Archives))
	})
	return r
}
