package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cafeatonce/shipgate/internal/integrations/shiprocket"
	"github.com/cafeatonce/shipgate/internal/services/shipments"
	"github.com/stretchr/testify/require"
)

func TestRunShipgate_ServesSwaggerAndRoutes(t *testing.T) {
	dir := t.TempDir()
	sw := filepath.Join(dir, "swagger.json")
	require.NoError(t, os.WriteFile(sw, []byte(`{"swagger":"2.0"}`), 0o600))

	// stub апстрима: логин + пустой трекинг
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/external/auth/login" {
			_, _ = w.Write([]byte(`{"token":"t"}`))
			return
		}
		_, _ = w.Write([]byte(`{"tracking_data":{"shipment_status":18}}`))
	}))
	defer upstream.Close()

	client := shiprocket.New(upstream.URL, "u", "p")
	svc := shipments.New(client, nil, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- runShipgate(ctx, shipgateOpts{
			httpAddr:    "127.0.0.1:0",
			swaggerPath: sw,
			onListen:    func(addr string) { addrCh <- addr },
		}, svc)
	}()

	var addr string
	select {
	case addr = <-addrCh:
	case err := <-errCh:
		t.Fatalf("server exited early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr + "/swagger.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	require.Contains(t, string(body), "\"swagger\"")

	resp2, err := http.Get("http://" + addr + "/api/shiprocket/tracking/AWB1")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var res map[string]any
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&res))
	require.Equal(t, true, res["success"])
	require.Equal(t, "IN_TRANSIT", res["current_status"])

	cancel()
	select {
	case <-errCh:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunShipgate_RequiresSwaggerPath(t *testing.T) {
	svc := shipments.New(shiprocket.New("", "u", "p"), nil, 0)
	err := runShipgate(context.Background(), shipgateOpts{httpAddr: "127.0.0.1:0"}, svc)
	require.Error(t, err)
}
