package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/scheduler"
	"github.com/vfg2006/tiktok-ads-pipeline/pkg/apiErrors"
)

const (
	CronJobTypeCampaign = "campaign"
	CronJobTypeAd       = "ad"
	CronJobTypeAll      = "all"
)

// CronJobServices holds the sync services the cron endpoints can trigger.
type CronJobServices struct {
	CampaignInsightSyncService *scheduler.InsightSyncService
	AdInsightSyncService       *scheduler.InsightSyncService
}

// RunCronJob triggers a sync run outside the cron schedule.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeCampaign:
			if services.CampaignInsightSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Campaign insight sync service not available", nil)
				return
			}
			services.CampaignInsightSyncService.TriggerManualSync()

		case CronJobTypeAd:
			if services.AdInsightSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Ad insight sync service not available", nil)
				return
			}
			services.AdInsightSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.CampaignInsightSyncService != nil {
				services.CampaignInsightSyncService.TriggerManualSync()
			}
			if services.AdInsightSyncService != nil {
				services.AdInsightSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: campaign, ad, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus returns the state of the sync schedulers.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"campaign": services.CampaignInsightSyncService.GetStatus(),
			"ad":       services.AdInsightSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
