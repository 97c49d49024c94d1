package handler

import (
	"net/http"

	"github.com/vfg2006/tiktok-ads-pipeline/internal/api/handler/router"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/materializing"
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

func Performance(service materializing.Materializer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/performance/campaigns",
			Method:  http.MethodGet,
			Handler: GetCampaignPerformance(service),
		},
		{
			Path:    "/v1/performance/creatives",
			Method:  http.MethodGet,
			Handler: GetCreativePerformance(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
