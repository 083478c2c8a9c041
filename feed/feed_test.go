// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-draw/models"
	"github.com/gorilla/websocket"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	return conn
}

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", want, h.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPublishReachesClients(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	a := dial(t, srv)
	defer a.Close()
	b := dial(t, srv)
	defer b.Close()
	waitForClients(t, hub, 2)

	sent := models.DrawView{
		PersonName: "Alice",
		ItemName:   "Panettone",
		CreatedAt:  time.Date(2025, 12, 24, 20, 0, 0, 0, time.UTC),
	}
	hub.Publish(sent)

	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("ReadMessage failed: %v", err)
		}

		var got models.DrawView
		if err := json.Unmarshal(msg, &got); err != nil {
			t.Fatalf("invalid JSON %q: %v", msg, err)
		}
		if got.PersonName != sent.PersonName || got.ItemName != sent.ItemName || !got.CreatedAt.Equal(sent.CreatedAt) {
			t.Errorf("got %+v, want %+v", got, sent)
		}
	}
}

func TestClientDisconnect(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)

	// Publishing with nobody listening is a no-op
	hub.Publish(models.DrawView{PersonName: "Bob", ItemName: "Wine"})
}

func TestSlowClientIsDropped(t *testing.T) {
	hub := NewHub()
	c := &client{remote: "slow", outgoing: make(chan []byte, 1)}
	hub.add(c)

	hub.Publish(models.DrawView{PersonName: "Alice"})
	if hub.ClientCount() != 1 {
		t.Fatal("client with room in its buffer should stay")
	}

	hub.Publish(models.DrawView{PersonName: "Bob"})
	if hub.ClientCount() != 0 {
		t.Fatal("client with a full buffer should be dropped")
	}

	// The buffered message is still delivered, then the channel is closed
	if _, ok := <-c.outgoing; !ok {
		t.Error("expected the first message")
	}
	if _, ok := <-c.outgoing; ok {
		t.Error("expected outgoing to be closed")
	}

	// remove after a drop must not close twice
	hub.remove(c)
}

func TestServeWSRejectsPlainHTTP(t *testing.T) {
	hub := NewHub()
	req := httptest.NewRequest("GET", "/draws/live", nil)
	w := httptest.NewRecorder()

	hub.ServeWS(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a non-websocket request, got %d", w.Code)
	}
	if hub.ClientCount() != 0 {
		t.Error("failed upgrade must not register a client")
	}
}
