package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/materializing"
	"github.com/vfg2006/tiktok-ads-pipeline/pkg/apiErrors"
	"github.com/vfg2006/tiktok-ads-pipeline/pkg/log"
	"github.com/vfg2006/tiktok-ads-pipeline/pkg/utils"
)

// parsePerformancePeriod reads the optional start_date/end_date query
// parameters. A missing end date defaults to today and a missing start
// date to 30 days before the end.
func parsePerformancePeriod(r *http.Request) (time.Time, time.Time, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end := *endDate
	if end.IsZero() {
		end = time.Now().Truncate(24 * time.Hour)
	}

	start := *startDate
	if start.IsZero() {
		start = end.AddDate(0, 0, -30)
	}

	return start, end, nil
}

func GetCampaignPerformance(service materializing.Materializer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		start, end, err := parsePerformancePeriod(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("performance: invalid period parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		rows, err := service.ListCampaignPerformance(r.Context(), start, end)
		if err != nil {
			logger.WithField("error", err.Error()).Error("performance: error listing campaign performance")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing campaign performance", nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": utils.FormatDate(start),
			"end_date":   utils.FormatDate(end),
			"total":      len(rows),
		}).Info("performance: campaign performance listed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			logger.WithField("error", err.Error()).Error("performance: error encoding response")
		}
	})
}

func GetCreativePerformance(service materializing.Materializer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		start, end, err := parsePerformancePeriod(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("performance: invalid period parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		rows, err := service.ListCreativePerformance(r.Context(), start, end)
		if err != nil {
			logger.WithField("error", err.Error()).Error("performance: error listing creative performance")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing creative performance", nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": utils.FormatDate(start),
			"end_date":   utils.FormatDate(end),
			"total":      len(rows),
		}).Info("performance: creative performance listed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			logger.WithField("error", err.Error()).Error("performance: error encoding response")
		}
	})
}
