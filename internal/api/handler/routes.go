package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
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
	}
}

func Analytics(reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/total-revenue",
			Method:  http.MethodGet,
			Handler: GetTotalRevenue(reporter),
		},
		{
			Path:    "/v1/sales/monthly-trends",
			Method:  http.MethodGet,
			Handler: GetMonthlySalesTrends(reporter),
		},
		{
			Path:    "/v1/products/sales-count",
			Method:  http.MethodGet,
			Handler: GetSalesCountByProduct(reporter),
		},
		{
			Path:    "/v1/products/top",
			Method:  http.MethodGet,
			Handler: GetTopProducts(reporter),
		},
		{
			Path:    "/v1/products/unpopular",
			Method:  http.MethodGet,
			Handler: GetUnpopularProducts(reporter),
		},
		{
			Path:    "/v1/customers/spending",
			Method:  http.MethodGet,
			Handler: GetCustomerSpending(reporter),
		},
		{
			Path:    "/v1/customers/purchase-count",
			Method:  http.MethodGet,
			Handler: GetCustomerPurchaseCount(reporter),
		},
		{
			Path:    "/v1/customers/top",
			Method:  http.MethodGet,
			Handler: GetTopCustomers(reporter),
		},
	}
}

func Reports(reporter reporting.Reporter, defaultThreshold decimal.Decimal) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodGet,
			Handler: ListReportTypes(),
		},
		{
			Path:    "/v1/reports/:type",
			Method:  http.MethodPost,
			Handler: GenerateReport(reporter, defaultThreshold),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/report/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services, CronJobTypeReport),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
