package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "PhotoGuessr API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the PhotoGuessr photo-dating game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/session
	postSession, _ := r.NewOperationContext(http.MethodPost, "/api/session")
	postSession.SetSummary("Create session")
	postSession.SetDescription("Creates a player session and returns its Bearer token.")
	postSession.AddReqStructure(CreateSessionRequest{})
	postSession.AddRespStructure(CreateSessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postSession)

	// GET /api/game/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/game/state")
	getState.SetSummary("Get game state")
	getState.SetDescription("Returns the settled state snapshot with derived views. Requires Bearer token.")
	getState.AddRespStructure(StateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getState)

	// POST /api/game/start
	postStart, _ := r.NewOperationContext(http.MethodPost, "/api/game/start")
	postStart.SetSummary("Start game")
	postStart.SetDescription("Loads a deck if needed and starts a five-round game.")
	postStart.AddReqStructure(StartGameRequest{})
	postStart.AddRespStructure(StateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	_ = r.AddOperation(postStart)

	// POST /api/game/next
	postNext, _ := r.NewOperationContext(http.MethodPost, "/api/game/next")
	postNext.SetSummary("Advance to the next photo")
	postNext.SetDescription("Advances the round; on the last round the game completes instead.")
	postNext.AddRespStructure(StateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postNext.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postNext)

	// POST /api/game/guess
	postGuess, _ := r.NewOperationContext(http.MethodPost, "/api/game/guess")
	postGuess.SetSummary("Submit guess")
	postGuess.SetDescription("Scores the guess for the current photo and reveals the answer.")
	postGuess.AddReqStructure(GuessRequest{})
	postGuess.AddRespStructure(RoundResult{}, openapi.WithHTTPStatus(http.StatusOK))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	_ = r.AddOperation(postGuess)

	// POST /api/game/photos/load
	postLoad, _ := r.NewOperationContext(http.MethodPost, "/api/game/photos/load")
	postLoad.SetSummary("Load a photo deck")
	postLoad.SetDescription("Starts an asynchronous deck load; completion arrives on the event stream.")
	postLoad.AddReqStructure(LoadPhotosRequest{})
	postLoad.AddRespStructure(StateResponse{}, openapi.WithHTTPStatus(http.StatusAccepted))
	_ = r.AddOperation(postLoad)

	// GET /api/game/results
	getResults, _ := r.NewOperationContext(http.MethodGet, "/api/game/results")
	getResults.SetSummary("Final results")
	getResults.SetDescription("Per-round answers and the aggregate breakdown. Only for a completed game.")
	getResults.AddRespStructure(ResultsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getResults.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(getResults)

	// GET /api/game/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/game/events")
	getEvents.SetSummary("SSE state stream")
	getEvents.SetDescription("Server-Sent Events stream of settled state snapshots. Pass token as query parameter.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /ws/state
	getWSState, _ := r.NewOperationContext(http.MethodGet, "/ws/state")
	getWSState.SetSummary("Websocket state stream")
	getWSState.SetDescription("Upgrades to a websocket that pushes settled state snapshots.")
	getWSState.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWSState)

	// POST /api/admin/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	postLogin.SetSummary("Admin login")
	postLogin.AddReqStructure(AdminLoginRequest{})
	postLogin.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// POST /api/admin/photos
	postPhoto, _ := r.NewOperationContext(http.MethodPost, "/api/admin/photos")
	postPhoto.SetSummary("Upsert curated photo")
	postPhoto.AddReqStructure(AdminPhotoRequest{})
	postPhoto.AddRespStructure(AdminPhotoRequest{}, openapi.WithHTTPStatus(http.StatusOK))
	postPhoto.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postPhoto)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(spec)
	}
}
