package spectator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codeberg.org/tslocum/ludo"
	"github.com/coder/websocket"
)

func newTestGame(t *testing.T) *ludo.Game {
	t.Helper()

	g, err := ludo.NewGame(2, ludo.NewSeededDice(1), nil)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestBoard(t *testing.T) {
	s := NewServer(false)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/board")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusNoContent)
	}

	g := newTestGame(t)
	g.SetListener(s.Publish)
	g.Players[1].Enter()
	g.PublishState()

	res, err = http.Get(srv.URL + "/board")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	var ev ludo.EventBoard
	if err := json.NewDecoder(res.Body).Decode(&ev); err != nil {
		t.Fatal(err)
	}
	if ev.Type != ludo.EventTypeBoard || ev.ID != g.ID || len(ev.Players) != 2 || ev.Players[1].Pieces[0].Position != 13 {
		t.Fatalf("unexpected board %+v", ev)
	}
}

func TestWebSocket(t *testing.T) {
	s := NewServer(false)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	g := newTestGame(t)
	g.SetListener(s.Publish)
	g.PublishState()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.CloseNow()

	read := func() map[string]interface{} {
		t.Helper()

		_, buf, err := conn.Read(ctx)
		if err != nil {
			t.Fatal(err)
		}
		var ev map[string]interface{}
		if err := json.Unmarshal(buf, &ev); err != nil {
			t.Fatal(err)
		}
		return ev
	}

	if ev := read(); ev["Type"] != ludo.EventTypeBoard || ev["ID"] != g.ID {
		t.Fatalf("unexpected first event %+v", ev)
	}

	_, err = g.RollForStart()
	if err != nil {
		t.Fatal(err)
	}
	if ev := read(); ev["Type"] != ludo.EventTypeOpeningRoll {
		t.Fatalf("unexpected event %+v", ev)
	}

	conn.Close(websocket.StatusNormalClosure, "")
	deadline := time.Now().Add(5 * time.Second)
	for {
		s.clientsLock.Lock()
		n := len(s.clients)
		s.clientsLock.Unlock()
		if n == 0 {
			break
		} else if time.Now().After(deadline) {
			t.Fatal("spectator was not removed")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSlowClient(t *testing.T) {
	s := NewServer(false)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := &client{events: make(chan []byte, 1)}
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatal(err)
	}
	c.conn = conn
	s.addClient(c)

	s.Publish(&ludo.EventTurn{})
	s.Publish(&ludo.EventTurn{})
	if !c.Terminated() {
		t.Fatal("client which can not keep up was not terminated")
	}
	s.clientsLock.Lock()
	defer s.clientsLock.Unlock()
	for _, sc := range s.clients {
		if sc == c {
			t.Fatal("terminated client was not removed")
		}
	}
}
