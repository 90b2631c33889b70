package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aydinsoft/backoffice-backend/api/controllers"
	"github.com/aydinsoft/backoffice-backend/api/middleware"
	"github.com/aydinsoft/backoffice-backend/api/responses"
	"github.com/aydinsoft/backoffice-backend/internal/audit"
	authsvc "github.com/aydinsoft/backoffice-backend/internal/auth"
	"github.com/aydinsoft/backoffice-backend/internal/avatars"
	categorysvc "github.com/aydinsoft/backoffice-backend/internal/categories"
	"github.com/aydinsoft/backoffice-backend/internal/dashboard"
	expensesvc "github.com/aydinsoft/backoffice-backend/internal/expenses"
	invoicesvc "github.com/aydinsoft/backoffice-backend/internal/invoices"
	productsvc "github.com/aydinsoft/backoffice-backend/internal/products"
	"github.com/aydinsoft/backoffice-backend/internal/profiles"
	usersvc "github.com/aydinsoft/backoffice-backend/internal/users"
	"github.com/aydinsoft/backoffice-backend/pkg/auth/session"
	"github.com/aydinsoft/backoffice-backend/pkg/config"
	"github.com/aydinsoft/backoffice-backend/pkg/db"
	"github.com/aydinsoft/backoffice-backend/pkg/enums"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
	"github.com/aydinsoft/backoffice-backend/pkg/logger"
	"github.com/aydinsoft/backoffice-backend/pkg/metrics"
	"github.com/aydinsoft/backoffice-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          db.Pinger
	Redis       *redis.Client
	Sessions    session.Checker
	Metrics     *metrics.HTTPMetrics
	MetricsHTTP http.Handler

	Auth       authsvc.Service
	Users      usersvc.Service
	Products   productsvc.Service
	Invoices   invoicesvc.Service
	Expenses   expensesvc.Service
	Categories categorysvc.Service
	Audit      audit.Service
	Dashboard  dashboard.Service
	Profiles   *profiles.Store
	Avatars    *avatars.Store
}

// NewRouter assembles the full HTTP surface.
func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(d.Metrics),
		middleware.CORS(cfg.App.CORSOrigins...),
	)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "Method not allowed"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(d.DB, d.Redis, logg))
	})

	if d.MetricsHTTP != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsHTTP)
	} else {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		// Login is the lone unauthenticated endpoint; the clients have
		// always posted credentials to the users collection.
		r.Post("/users", controllers.Login(d.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, d.Sessions, logg))

			r.Post("/logout", controllers.Logout(d.Auth, logg))

			r.Get("/users", controllers.ListUsers(d.Users, logg))
			r.Put("/users", controllers.UpdateUser(d.Users, logg))
			r.With(middleware.RequireRole(logg, enums.RoleAdmin)).Post("/users/create", controllers.CreateUser(d.Users, logg))
			r.With(middleware.RequireRole(logg, enums.RoleAdmin)).Delete("/users/{id}", controllers.DeleteUser(d.Users, logg))

			r.Get("/products", controllers.ListProducts(d.Products, logg))
			r.Post("/products", controllers.CreateProduct(d.Products, logg))
			r.Put("/products", controllers.UpdateProduct(d.Products, logg))
			r.Delete("/products", controllers.DeleteProduct(d.Products, logg))

			r.Get("/invoices", controllers.ListInvoices(d.Invoices, logg))
			r.Post("/invoices", controllers.CreateInvoice(d.Invoices, logg))
			r.Put("/invoices", controllers.UpdateInvoice(d.Invoices, logg))
			r.Delete("/invoices", controllers.DeleteInvoice(d.Invoices, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSupervisorPlus(logg))

				r.Get("/expenses", controllers.ListExpenses(d.Expenses, logg))
				r.Post("/expenses", controllers.CreateExpense(d.Expenses, logg))
				r.Put("/expenses", controllers.UpdateExpense(d.Expenses, logg))
				r.Delete("/expenses", controllers.DeleteExpense(d.Expenses, logg))

				r.Get("/dashboard/summary", controllers.DashboardSummary(d.Dashboard, logg))
				r.Delete("/transactions/clear", controllers.ClearTransactions(d.Audit, logg))
			})

			r.Get("/categories", controllers.ListCategories(d.Categories, logg))
			r.Post("/categories", controllers.CreateCategory(d.Categories, logg))
			r.Delete("/categories", controllers.DeleteCategory(d.Categories, logg))

			r.Get("/transactions", controllers.ListTransactions(d.Audit, logg))
			r.Post("/transactions/add", controllers.AddTransaction(d.Audit, logg))

			r.Get("/avatars/{filename}", controllers.ServeAvatar(d.Avatars, logg))
			r.Post("/upload-avatar", controllers.UploadAvatar(d.Avatars, logg))

			r.Get("/user-profile", controllers.GetProfile(d.Profiles, logg))
			r.Post("/user-profile", controllers.SaveProfile(d.Profiles, logg))
		})
	})

	return r
}
