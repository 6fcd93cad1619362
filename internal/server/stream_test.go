package server

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nhooyr.io/websocket"

	"github.com/pastlens/photoguessr/internal/photoguessr"
)

func TestHandleWSState(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)

	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + srv.URL[len("http"):] + "/ws/state?token=" + token

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow()

	// The handler subscribes shortly after the handshake; keep nudging the
	// store until a snapshot comes through.
	got := make(chan []byte, 1)
	go func() {
		_, data, err := conn.Read(ctx)
		if err == nil {
			got <- data
		}
	}()

	var data []byte
	deadline := time.After(5 * time.Second)
poll:
	for {
		doJSON(t, r, http.MethodPost, "/api/game/view", token, ViewRequest{Op: "toggle"})
		select {
		case data = <-got:
			break poll
		case <-deadline:
			t.Fatal("no websocket snapshot received")
		case <-time.After(50 * time.Millisecond):
		}
	}

	var state StateResponse
	if err := json.Unmarshal(data, &state); err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if state.Game.Status != photoguessr.StatusNotStarted {
		t.Errorf("snapshot status = %s, want NOT_STARTED", state.Game.Status)
	}

	conn.Close(websocket.StatusNormalClosure, "done")
}

func TestHandleEvents(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)

	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/game/events?token="+token, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("opening event stream: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content-type = %q", ct)
	}

	// Nudge the store until a state event arrives on the stream.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-time.After(50 * time.Millisecond):
				doJSON(t, r, http.MethodPost, "/api/game/view", token, ViewRequest{Op: "toggle"})
			}
		}
	}()

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sawEvent := false
	for scanner.Scan() {
		line := scanner.Text()
		if line == "event: state" {
			sawEvent = true
			continue
		}
		if sawEvent && strings.HasPrefix(line, "data: ") {
			var state StateResponse
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &state); err != nil {
				t.Fatalf("decoding event payload: %v", err)
			}
			return
		}
	}
	t.Fatalf("stream ended without a state event: %v", scanner.Err())
}
