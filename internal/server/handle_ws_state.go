package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"nhooyr.io/websocket"
)

// handleWSState streams settled state snapshots over a websocket, for
// clients that prefer it to SSE. Write-only: incoming messages are drained
// and ignored.
func handleWSState(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := gameStore(r)

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx := r.Context()
		go func() {
			// Drain reads so pings and client closes are processed.
			for {
				if _, _, err := conn.Read(ctx); err != nil {
					return
				}
			}
		}()

		ch := store.Subscribe()
		defer store.Unsubscribe(ch)

		for {
			select {
			case <-ctx.Done():
				return
			case snapshot := <-ch:
				data, err := json.Marshal(stateResponse(snapshot, time.Now()))
				if err != nil {
					continue
				}
				if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
					logger.Debug("websocket write failed", "error", err)
					return
				}
			}
		}
	}
}
