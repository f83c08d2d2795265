package delivery

import (
	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(
	r chi.Router,
	hHistory *HistoryHandler,
	hShop *ShopHandler,
) {
	r.Route("/", func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		// --- история / статус ---
		pr.Get("/status", hHistory.GetStatus)
		pr.Get("/history/{user_id}", hHistory.GetHistory)
		pr.Delete("/history/{user_id}", hHistory.ClearHistory)

		// --- магазин ---
		pr.Get("/products", hShop.ListProducts)
		pr.Post("/products", hShop.CreateProduct)
		pr.Get("/products/{id}", hShop.GetProduct)
	})
}
