package rest

import (
	"net/http"
	"time"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/platform/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Users    *UserHandler
	Catalog  *CatalogHandler
	Bookings *BookingHandler
	Payments *PaymentHandler
	Reports  *ReportHandler
}

// NewRouter mounts every route of the HTTP surface. Credential
// verification is deliberately not enforced on these routes: role checks
// are advisory queries the client acts on, and the seller products route
// only demands that a bearer header be present. See DESIGN.md.
func NewRouter(h Handlers, requestTimeout time.Duration, log logger.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(RequestLogger(log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Sokher Furniture server is running"))
	})

	r.Get("/jwt", h.Users.IssueToken)
	r.Post("/users", h.Users.Register)
	r.Get("/users", h.Users.ListUsers)
	r.Get("/users/buyer/{email}", h.Users.IsBuyer)
	r.Get("/users/seller/{email}", h.Users.IsSeller)
	r.Get("/users/admin/{email}", h.Users.IsAdmin)
	r.Delete("/users/{id}", h.Users.DeleteUser)
	r.Get("/sellers", h.Users.ListSellers)
	r.Get("/verified/sellers", h.Users.ListVerifiedSellers)
	r.Put("/sellers/verify/{id}", h.Users.VerifySeller)

	r.Get("/productsCategories", h.Catalog.ListCategories)
	r.Get("/categories/{name}", h.Catalog.ListByCategory)
	r.Get("/products", h.Catalog.ListProducts)
	r.Post("/products", h.Catalog.CreateProduct)
	r.Get("/products/{id}", h.Catalog.GetProduct)
	r.Delete("/products/{id}", h.Catalog.DeleteProduct)
	r.With(RequireBearerHeader).Get("/seller/products", h.Catalog.ListSellerProducts)
	r.Put("/seller/advertising/product/{id}", h.Catalog.AdvertiseProduct)
	r.Get("/advertising/products", h.Catalog.ListAdvertisedProducts)

	r.Post("/bookings", h.Bookings.CreateBooking)
	r.Get("/bookings", h.Bookings.ListBookings)
	r.Get("/bookings/{id}", h.Bookings.IsBooked)
	r.Get("/user/orders", h.Bookings.ListBuyerOrders)
	r.Get("/seller/orders", h.Bookings.ListSellerOrders)
	r.Get("/payment/orders/{id}", h.Bookings.GetOrder)

	r.Post("/create-payment-intent", h.Payments.CreatePaymentIntent)
	r.Post("/payments", h.Payments.ConfirmPayment)

	r.Post("/product/report", h.Reports.CreateReport)
	r.Get("/product/report", h.Reports.ListReports)
	r.Delete("/product/report/{id}", h.Reports.DeleteReport)

	return r
}
