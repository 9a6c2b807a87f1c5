package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"climacontrol/internal/service"

	"github.com/gorilla/websocket"
)

func TestWebSocketOverviewStream(t *testing.T) {
	rep := &mockReports{overview: service.Overview{TotalEquipments: 6, ActiveEquipments: 4}}
	r := newTestRouter(&service.Service{Reports: rep})
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?interval_ms=50"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer func() { _ = conn.Close() }()
	if resp != nil {
		_ = resp.Body.Close()
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	// Initial frame arrives immediately, the next from the ticker.
	for i := 0; i < 2; i++ {
		var env wsEnvelope
		if err := conn.ReadJSON(&env); err != nil {
			t.Fatalf("read frame %d: %v", i, err)
		}
		if env.Type != "overview" {
			t.Fatalf("frame %d type = %q", i, env.Type)
		}
		data, ok := env.Data.(map[string]interface{})
		if !ok {
			t.Fatalf("frame %d data = %T", i, env.Data)
		}
		if data["total_equipments"] != float64(6) {
			t.Fatalf("frame %d total = %v", i, data["total_equipments"])
		}
	}
}
