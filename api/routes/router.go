package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ovees/eleganza-backend/api/controllers"
	"github.com/ovees/eleganza-backend/api/middleware"
	"github.com/ovees/eleganza-backend/pkg/config"
	"github.com/ovees/eleganza-backend/pkg/logger"
	"github.com/ovees/eleganza-backend/pkg/metrics"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       controllers.Pinger
	Cache    controllers.Pinger
	Catalog  controllers.CatalogService
	Cart     controllers.CartService
	Hydrator controllers.CartHydrator
	Checkout controllers.CheckoutService
	Orders   controllers.OrdersService
	Reorder  controllers.ReorderStager
	Metrics  *metrics.HTTPMetrics
	Registry *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Cache))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(logg, cfg.App.IsProd()))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(deps.Hydrator, logg))
			r.Put("/", controllers.CartReplace(deps.Cart, logg))
			r.Delete("/", controllers.CartClear(deps.Cart, logg))
			r.Post("/items", controllers.CartAddItem(deps.Cart, deps.Catalog, logg))
			r.Patch("/items/{itemKey}", controllers.CartSetQuantity(deps.Cart, logg))
			r.Delete("/items/{itemKey}", controllers.CartRemoveItem(deps.Cart, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/summary", controllers.CheckoutSummary(deps.Checkout, logg))
			r.Post("/", controllers.Checkout(deps.Checkout, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(deps.Orders, logg))
			r.Get("/{orderId}", controllers.OrderDetail(deps.Orders, logg))
			r.Post("/{orderId}/reorder", controllers.OrderReorder(deps.Reorder, logg))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.CatalogProducts(deps.Catalog, logg))
			r.Get("/products/{productId}", controllers.CatalogProduct(deps.Catalog, logg))
			r.Get("/collections/{slug}", controllers.CatalogCollection(deps.Catalog, logg))
			r.Get("/new-arrivals", controllers.CatalogNewArrivals(deps.Catalog, logg))
			r.Get("/combos", controllers.CatalogCombos(deps.Catalog, logg))
			r.Get("/combos/{comboId}", controllers.CatalogCombo(deps.Catalog, logg))
			r.Get("/categories", controllers.CatalogCategories(deps.Catalog, logg))
			r.Get("/banners", controllers.CatalogBanners(deps.Catalog, logg))
		})
	})

	return r
}
