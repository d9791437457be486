package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/sales-ledger/internal/common"
	"github.com/tdnguyen/sales-ledger/internal/entity"
)

func TestSaveSuccess(t *testing.T) {
	var got []entity.Record
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	err := c.Save(context.Background(), []entity.Record{{Bill: "INV1", Date: "2024-05-01"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "INV1", got[0].Bill)
}

func TestSaveServerReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "db unavailable"})
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second, nil).Save(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSaveRejected)
	assert.Contains(t, err.Error(), "db unavailable")
}

func TestSaveUndecodableResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>upstream error</html>"))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second, nil).Save(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrRequestFailed)
}

func TestSaveTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	err := NewClient(srv.URL, time.Second, nil).Save(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrRequestFailed)
}
