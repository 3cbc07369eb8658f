package pool_test

import (
	"bytes"
	"encoding/json"
	"maxios-backend/internal/api/v1/pool"
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
	"maxios-backend/internal/services"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Miner{}, &models.News{}, &models.ArbitragePool{}, &models.Setting{})
	err = db.AutoMigrate(&models.User{}, &models.Miner{}, &models.News{}, &models.ArbitragePool{}, &models.Setting{})
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/api/v1")
	pool.RegisterRoutes(v1)
	return r
}

func TestEstimateEndpoint(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	// Fixed-rate mode so the expected numbers are simple
	assert.NoError(t, services.SaveProfitabilityConfig(services.ProfitabilityConfig{
		UseFixedRate:    true,
		FixedRatePerTHs: 0.06,
		BTCPrice:        100000,
	}))

	payload, _ := json.Marshal(services.ProfitabilityInput{Hashrate: 100, PowerWatts: 1000, CostPerKWH: 0.10})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/pool/profitability", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data services.ProfitabilityResult `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 6.0, resp.Data.DailyUSD, 1e-9)
	assert.InDelta(t, 2.4, resp.Data.DailyElectricCost, 1e-9)
	assert.InDelta(t, 3.6, resp.Data.NetDailyGain, 1e-9)
}

func TestEstimateEndpointRejectsNegativeInput(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	payload, _ := json.Marshal(services.ProfitabilityInput{Hashrate: -1})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/pool/profitability", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsEndpoint(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	user := models.User{Email: "miner@example.com", Password: "x", Role: "user", Version: 1}
	database.DB.Create(&user)
	database.DB.Create(&models.Miner{UserID: user.ID, WorkerName: "rig01", CurrentHashrate: 150, Status: models.MinerStatusActive})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/pool/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data services.PoolStats `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 150.0, resp.Data.TotalHashrate)
	assert.Equal(t, int64(1), resp.Data.ActiveMiners)
	assert.Equal(t, int64(1), resp.Data.Users)
}

func TestArbitrageEndpointListsOnlyActive(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	database.DB.Create(&models.ArbitragePool{Name: "Visible", Cryptocurrency: "BTC", IsActive: true})
	database.DB.Create(&models.ArbitragePool{Name: "Hidden", Cryptocurrency: "LTC", IsActive: false})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/pool/arbitrage", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.ArbitragePool `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "Visible", resp.Data[0].Name)
}
