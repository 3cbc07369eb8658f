package user_test

import (
	"bytes"
	"encoding/json"
	"maxios-backend/internal/api/v1/admin/user"
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	// Use in-memory SQLite for testing
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Transaction{})

	err = db.AutoMigrate(&models.User{}, &models.Transaction{})
	if err != nil {
		panic("failed to migrate database")
	}

	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM transactions")

	database.DB = db
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin")
	user.RegisterRoutes(admin)
	return r
}

func TestListUsers(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	database.DB.Create(&models.User{Email: "admin@example.com", Role: "admin", Password: "hashedpassword", Version: 1})
	database.DB.Create(&models.User{Email: "miner@example.com", Role: "user", Password: "hashedpassword", Version: 1, BalanceUSD: 12.5})

	tests := []struct {
		name           string
		page           string
		limit          string
		expectedStatus int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name:           "Valid Pagination",
			page:           "1",
			limit:          "10",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				var resp struct {
					Code    int                   `json:"status"`
					Message string                `json:"message"`
					Data    user.UserListResponse `json:"data"`
				}
				err := json.Unmarshal(body, &resp)
				assert.NoError(t, err)
				assert.Equal(t, 200, resp.Code)
				assert.Equal(t, int64(2), resp.Data.Total)
				assert.Len(t, resp.Data.Users, 2)
			},
		},
		{
			name:           "Invalid Page",
			page:           "0",
			limit:          "10",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid Limit",
			page:           "1",
			limit:          "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/admin/users?page="+tt.page+"&limit="+tt.limit, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w.Body.Bytes())
			}
		})
	}
}

func TestAdjustBalance(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	target := models.User{Email: "miner@example.com", Role: "user", Password: "hashedpassword", Version: 1, BalanceUSD: 100}
	database.DB.Create(&target)

	tests := []struct {
		name           string
		userID         string
		body           map[string]interface{}
		expectedStatus int
		expectedUSD    float64
	}{
		{
			name:   "Add Balance",
			userID: strconv.Itoa(int(target.ID)),
			body: map[string]interface{}{
				"operation": "add",
				"currency":  "USD",
				"amount":    50.0,
				"reason":    "promo credit",
			},
			expectedStatus: http.StatusOK,
			expectedUSD:    150,
		},
		{
			name:   "Subtract Balance",
			userID: strconv.Itoa(int(target.ID)),
			body: map[string]interface{}{
				"operation": "subtract",
				"currency":  "USD",
				"amount":    25.0,
				"reason":    "correction",
			},
			expectedStatus: http.StatusOK,
			expectedUSD:    125,
		},
		{
			name:   "Overdraw Rejected",
			userID: strconv.Itoa(int(target.ID)),
			body: map[string]interface{}{
				"operation": "subtract",
				"currency":  "USD",
				"amount":    9999.0,
				"reason":    "too much",
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedUSD:    125,
		},
		{
			name:   "Unknown Currency Rejected",
			userID: strconv.Itoa(int(target.ID)),
			body: map[string]interface{}{
				"operation": "add",
				"currency":  "EUR",
				"amount":    10.0,
				"reason":    "bad currency",
			},
			expectedStatus: http.StatusBadRequest,
			expectedUSD:    125,
		},
		{
			name:   "Missing Reason Rejected",
			userID: strconv.Itoa(int(target.ID)),
			body: map[string]interface{}{
				"operation": "add",
				"currency":  "USD",
				"amount":    10.0,
			},
			expectedStatus: http.StatusBadRequest,
			expectedUSD:    125,
		},
		{
			name:   "Unknown User",
			userID: "99999",
			body: map[string]interface{}{
				"operation": "add",
				"currency":  "USD",
				"amount":    10.0,
				"reason":    "ghost",
			},
			expectedStatus: http.StatusNotFound,
			expectedUSD:    125,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/admin/users/"+tt.userID+"/balance", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var fresh models.User
			database.DB.First(&fresh, target.ID)
			assert.Equal(t, tt.expectedUSD, fresh.BalanceUSD)
		})
	}
}

func TestMassUpdateBalancesEndpoint(t *testing.T) {
	setupTestDB()
	r := setupRouter()

	rich := models.User{Email: "rich@example.com", Role: "user", Password: "x", Version: 1, BalanceUSD: 100}
	poor := models.User{Email: "poor@example.com", Role: "user", Password: "x", Version: 1, BalanceUSD: 1}
	database.DB.Create(&rich)
	database.DB.Create(&poor)

	payload, _ := json.Marshal(map[string]interface{}{
		"userIds":   []uint{rich.ID, poor.ID},
		"operation": "subtract",
		"currency":  "USD",
		"amount":    50.0,
		"reason":    "batch correction",
	})

	req, _ := http.NewRequest(http.MethodPost, "/admin/users-balance/mass", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Updated int `json:"updated"`
			Failed  int `json:"failed"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Updated)
	assert.Equal(t, 1, resp.Data.Failed)
}
