package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/slimcoreui/preorder-admin/internal/engine"
	"github.com/slimcoreui/preorder-admin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler func(action string, payload json.RawMessage) any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req struct {
			Action  string          `json:"action"`
			Payload json.RawMessage `json:"payload"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(handler(req.Action, req.Payload)))
	}))
}

func TestClient_Call_SerializesActionAndPayload(t *testing.T) {
	var gotAction string
	var gotPayload json.RawMessage
	srv := newTestServer(t, func(action string, payload json.RawMessage) any {
		gotAction = action
		gotPayload = payload
		return "ok"
	})
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	raw, err := c.Call(context.Background(), "updateOrder", map[string]string{"id": "ORD-1"})

	require.NoError(t, err)
	assert.JSONEq(t, `"ok"`, string(raw))
	assert.Equal(t, "updateOrder", gotAction)
	assert.JSONEq(t, `{"id":"ORD-1"}`, string(gotPayload))
}

func TestClient_Call_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Call(context.Background(), "getData", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_FetchOrders_NormalizesOnIngestion(t *testing.T) {
	srv := newTestServer(t, func(action string, _ json.RawMessage) any {
		require.Equal(t, "getData", action)
		return []map[string]any{
			{"id": "A1", "status": "PENDING", "paidDate": "", "filledDate": ""},
			{"id": "A2", "status": "PENDING", "paidDate": "05/01/2024", "filledDate": ""},
			{"id": "A3", "status": "PAID", "paidDate": "05/01/2024", "filledDate": ""},
		}
	})
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	orders, err := c.FetchOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, model.LogicValid, orders[0].LogicStatus)
	assert.Equal(t, model.LogicError, orders[1].LogicStatus)
	assert.Equal(t, model.LogicWarning, orders[2].LogicStatus)
}

func TestClient_FetchOrders_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.FetchOrders(ctx)
	assert.Error(t, err)
}

func TestClient_UpdateOrder(t *testing.T) {
	tests := []struct {
		name     string
		response any
		wantErr  string
	}{
		{
			name:     "success",
			response: "SUCCESS",
		},
		{
			name:     "error string in successful response",
			response: "Row not found",
			wantErr:  "remote sync rejected: Row not found",
		},
		{
			name:     "unexpected response shape",
			response: map[string]string{"status": "ok"},
			wantErr:  "unexpected updateOrder response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPayload json.RawMessage
			srv := newTestServer(t, func(_ string, payload json.RawMessage) any {
				gotPayload = payload
				return tt.response
			})
			defer srv.Close()

			c := NewClient(srv.URL, 5*time.Second)
			err := c.UpdateOrder(context.Background(), engine.Update{
				ID:       "ORD-1",
				Status:   "PAID",
				PaidDate: "05/01/2024",
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t,
				`{"id":"ORD-1","status":"PAID","filledDate":"","paidDate":"05/01/2024","remarks":""}`,
				string(gotPayload))
		})
	}
}

func TestClient_FetchCSV(t *testing.T) {
	srv := newTestServer(t, func(action string, _ json.RawMessage) any {
		require.Equal(t, "getCsvData", action)
		return "id,status\nORD-1,PAID\n"
	})
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	csv, err := c.FetchCSV(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "id,status\nORD-1,PAID\n", csv)
}

func TestClient_RecentLogs(t *testing.T) {
	srv := newTestServer(t, func(action string, _ json.RawMessage) any {
		require.Equal(t, "getRecentLogs", action)
		return []any{
			[]any{"2024-01-05 10:00", "ORD-2", "status -> PAID"},
			[]any{1704441600, "ORD-1", nil},
		}
	})
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	logs, err := c.RecentLogs(context.Background())

	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, EditLog{Time: "2024-01-05 10:00", OrderID: "ORD-2", Detail: "status -> PAID"}, logs[0])
	assert.Equal(t, "ORD-1", logs[1].OrderID)
	assert.Empty(t, logs[1].Detail)
}

func TestClient_Ping(t *testing.T) {
	srv := newTestServer(t, func(action string, _ json.RawMessage) any {
		require.Equal(t, "serverPing", action)
		return "pong"
	})
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	assert.NoError(t, c.Ping(context.Background()))
}
