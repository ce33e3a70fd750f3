package handler

import (
	"net/http"

	"github.com/vfg2006/seller-pnl-api/internal/api/handler/router"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/analyzing"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/authenticating"
	"github.com/vfg2006/seller-pnl-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Analytics retorna as rotas financeiras de uma loja; todas exigem vínculo com a loja
func Analytics(service analyzing.Analyzer) []router.Route {
	routes := []router.Route{
		{Path: "/v1/shops/:id/metrics", Method: http.MethodGet, Handler: GetShopMetrics(service)},
		{Path: "/v1/shops/:id/summary", Method: http.MethodGet, Handler: GetSummary(service)},
		{Path: "/v1/shops/:id/summary.pdf", Method: http.MethodGet, Handler: GetSummaryPDF(service)},
		{Path: "/v1/shops/:id/report", Method: http.MethodGet, Handler: GetArticleReport(service)},
		{Path: "/v1/shops/:id/profitability", Method: http.MethodGet, Handler: GetArticleProfitability(service)},
		{Path: "/v1/shops/:id/top-products", Method: http.MethodGet, Handler: GetTopProducts(service)},
		{Path: "/v1/shops/:id/what-if", Method: http.MethodPost, Handler: PostWhatIf(service)},
		{Path: "/v1/shops/:id/comparison", Method: http.MethodGet, Handler: GetComparison(service)},
		{Path: "/v1/shops/:id/annual-yield", Method: http.MethodGet, Handler: GetAnnualYield(service)},
		{Path: "/v1/shops/:id/payback", Method: http.MethodGet, Handler: GetPayback(service)},
	}

	for i := range routes {
		routes[i].Middlewares = middleware.ShopRoutes()
	}

	return routes
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
