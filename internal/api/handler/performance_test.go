package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/materializing/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetCampaignPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMaterializer := mocks.NewMockMaterializer(ctrl)

	rows := []domain.CampaignPerformance{
		{
			Date:         time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
			CampaignID:   "c1",
			CampaignName: "camp one",
			Region:       "north",
			Content:      "sale",
			Format:       "video",
			StatusSymbol: domain.StatusEnabled,
			Spend:        12.5,
		},
	}

	mockMaterializer.EXPECT().
		ListCampaignPerformance(
			gomock.Any(),
			time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		).
		Return(rows, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/performance/campaigns?start_date=2026-08-01&end_date=2026-08-30", nil)
	rec := httptest.NewRecorder()

	GetCampaignPerformance(mockMaterializer).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var decoded []domain.CampaignPerformance
	err := json.Unmarshal(rec.Body.Bytes(), &decoded)
	assert.NoError(t, err)
	assert.Len(t, decoded, 1)
	assert.Equal(t, "c1", decoded[0].CampaignID)
	assert.Equal(t, "north", decoded[0].Region)
	assert.Equal(t, "sale", decoded[0].Content)
	assert.Equal(t, "video", decoded[0].Format)
	assert.Equal(t, 12.5, decoded[0].Spend)
}

func TestGetCampaignPerformance_InvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMaterializer := mocks.NewMockMaterializer(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/performance/campaigns?start_date=30-08-2026", nil)
	rec := httptest.NewRecorder()

	GetCampaignPerformance(mockMaterializer).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCreativePerformance_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMaterializer := mocks.NewMockMaterializer(ctrl)

	mockMaterializer.EXPECT().
		ListCreativePerformance(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/v1/performance/creatives", nil)
	rec := httptest.NewRecorder()

	GetCreativePerformance(mockMaterializer).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
