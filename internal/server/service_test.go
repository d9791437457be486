package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/sales-ledger/internal/common"
	"github.com/tdnguyen/sales-ledger/internal/entity"
	"github.com/tdnguyen/sales-ledger/internal/remote"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := OpenDB(context.Background(), filepath.Join(t.TempDir(), "sales.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return NewService(repo, nil)
}

func postSales(t *testing.T, router *gin.Engine, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSaveAndListRoundTrip(t *testing.T) {
	router := newTestService(t).Router()

	records := []entity.Record{
		{Date: "2024-05-01", Bill: "INV1", UPC: "HU12A567891234", SKU: "HU12A567891", Qty: "2", Amount: "500000", Cashier: "An", Type: "GOLF", Gender: "Male", Division: "ACC", Category: "12", Year: "2022", Season: "A", Size: "234"},
	}
	body, err := json.Marshal(records)
	require.NoError(t, err)

	w := postSales(t, router, body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string          `json:"status"`
		Sales  []entity.Record `json:"sales"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.Len(t, resp.Sales, 1)
	assert.Equal(t, records[0], resp.Sales[0])
}

func TestSaveReplacesPreviousBatch(t *testing.T) {
	svc := newTestService(t)
	router := svc.Router()

	first, _ := json.Marshal([]entity.Record{{Bill: "A"}, {Bill: "B"}})
	second, _ := json.Marshal([]entity.Record{{Bill: "C"}})

	require.Equal(t, http.StatusOK, postSales(t, router, first).Code)
	require.Equal(t, http.StatusOK, postSales(t, router, second).Code)

	stored, err := svc.repo.LatestBatch(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "C", stored[0].Bill)
}

func TestSaveRejectsInvalidPayload(t *testing.T) {
	router := newTestService(t).Router()

	cases := map[string]string{
		"not an array":     `{"date":"2024-05-01"}`,
		"unknown cashier":  `[{"date":"","bill":"","upc":"","skus":"","qty":"","amount":"","customer":"","mobile":"","promotion":"","cashier":"Bob","type":"","gender":"","division":"","category":"","year":"","season":"","size":""}]`,
		"missing field":    `[{"date":"2024-05-01"}]`,
		"unexpected field": `[{"date":"","bill":"","upc":"","skus":"","qty":"","amount":"","customer":"","mobile":"","promotion":"","cashier":"","type":"","gender":"","division":"","category":"","year":"","season":"","size":"","extra":"x"}]`,
		"numeric value":    `[{"date":"","bill":"","upc":"","skus":"","qty":1,"amount":"","customer":"","mobile":"","promotion":"","cashier":"","type":"","gender":"","division":"","category":"","year":"","season":"","size":""}]`,
	}
	for name, payload := range cases {
		w := postSales(t, router, []byte(payload))
		assert.Equal(t, http.StatusBadRequest, w.Code, name)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), name)
		assert.Equal(t, "error", resp["status"], name)
	}
}

func TestClientAgainstServer(t *testing.T) {
	router := newTestService(t).Router()
	srv := httptest.NewServer(router)
	defer srv.Close()

	client := remote.NewClient(srv.URL+"/api/sales", time.Second, nil)

	err := client.Save(context.Background(), []entity.Record{{Bill: "INV1", Cashier: "Trang"}})
	require.NoError(t, err)

	err = client.Save(context.Background(), []entity.Record{{Bill: "INV1", Cashier: "Bob"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSaveRejected)
}
