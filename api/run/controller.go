package runapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/mazerunner-api/api/identity"
	"github.com/beka-birhanu/mazerunner-api/service"
	"github.com/beka-birhanu/mazerunner-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RunController manages maze run sessions over HTTP.
type RunController struct {
	sessionManager i.RunSessionManager
	leaderboard    i.Leaderboard
}

// NewRunController initializes a RunController.
func NewRunController(sm i.RunSessionManager, lb i.Leaderboard) (*RunController, error) {
	if sm == nil || lb == nil {
		return nil, errors.New("run controller requires a session manager and a leaderboard")
	}
	return &RunController{
		sessionManager: sm,
		leaderboard:    lb,
	}, nil
}

// RegisterPublic registers public routes.
func (rc *RunController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/leaderboard", rc.top)
}

// RegisterProtected registers protected routes.
func (rc *RunController) RegisterProtected(route *gin.RouterGroup) {
	runs := route.Group("/runs")
	{
		runs.POST("/", rc.create)
		runs.GET("/:ID", rc.snapshot)
		runs.POST("/:ID/step", rc.step)
		runs.POST("/:ID/solve", rc.solve)
		runs.DELETE("/:ID", rc.end)
	}
}

// create starts a new run for the authenticated player.
func (rc *RunController) create(ctx *gin.Context) {
	var request NewRunRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playerID, username, ok := playerFromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	snap, err := rc.sessionManager.NewSession(playerID, username, request.Width, request.Height, request.Seed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toRunResponse(snap))
}

// snapshot returns the current state of a run.
func (rc *RunController) snapshot(ctx *gin.Context) {
	sessionID, ok := sessionIDFromPath(ctx)
	if !ok {
		return
	}

	snap, err := rc.sessionManager.Snapshot(sessionID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toRunResponse(snap))
}

// step advances a run one tick in the requested direction.
func (rc *RunController) step(ctx *gin.Context) {
	sessionID, ok := sessionIDFromPath(ctx)
	if !ok {
		return
	}

	var request StepRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := rc.sessionManager.Step(sessionID, request.Direction)
	if err != nil {
		ctx.JSON(runErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toRunResponse(snap))
}

// solve runs the named algorithm to completion.
func (rc *RunController) solve(ctx *gin.Context) {
	sessionID, ok := sessionIDFromPath(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := rc.sessionManager.Solve(sessionID, request.Algorithm)
	if err != nil {
		ctx.JSON(runErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toRunResponse(snap))
}

// end discards a run.
func (rc *RunController) end(ctx *gin.Context) {
	sessionID, ok := sessionIDFromPath(ctx)
	if !ok {
		return
	}

	if err := rc.sessionManager.EndSession(sessionID); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// top returns the best solves for a maze, fastest first.
func (rc *RunController) top(ctx *gin.Context) {
	mazeKey := ctx.Query("maze")
	if mazeKey == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "maze query parameter is required"})
		return
	}

	n, _ := strconv.ParseInt(ctx.DefaultQuery("n", "10"), 10, 64)

	records, err := rc.leaderboard.Top(ctx, mazeKey, n)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}

	entries := make([]LeaderboardEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, LeaderboardEntry{Username: record.Username, Ticks: record.Ticks})
	}
	ctx.JSON(http.StatusOK, entries)
}

// sessionIDFromPath parses the :ID path segment, responding 400 on garbage.
func sessionIDFromPath(ctx *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return uuid.Nil, false
	}
	return sessionID, true
}

// playerFromContext reads the authenticated player out of the claims the
// authorization middleware attached.
func playerFromContext(ctx *gin.Context) (uuid.UUID, string, bool) {
	raw, exists := ctx.Get(identity.ContextPlayerClaims)
	if !exists {
		return uuid.Nil, "", false
	}

	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, "", false
	}

	idString, _ := claims["playerID"].(string)
	playerID, err := uuid.Parse(idString)
	if err != nil {
		return uuid.Nil, "", false
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return uuid.Nil, "", false
	}

	return playerID, username, true
}

// runErrorStatus maps session manager failures to HTTP statuses.
func runErrorStatus(err error) int {
	if errors.Is(err, service.ErrNoSession) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func toRunResponse(snap *i.RunSnapshot) *RunResponse {
	response := &RunResponse{
		ID:       snap.ID.String(),
		Width:    snap.Width,
		Height:   snap.Height,
		Seed:     snap.Seed,
		Ticks:    snap.Ticks,
		Status:   snap.Status,
		Winner:   snap.Winner,
		Rendered: snap.Rendered,
		Active:   make([]RunnerResponse, 0, len(snap.Active)),
		Crashed:  make([]RunnerResponse, 0, len(snap.Crashed)),
	}
	for _, r := range snap.Active {
		response.Active = append(response.Active, toRunnerResponse(r))
	}
	for _, r := range snap.Crashed {
		response.Crashed = append(response.Crashed, toRunnerResponse(r))
	}
	return response
}

func toRunnerResponse(r i.RunnerState) RunnerResponse {
	return RunnerResponse{
		Name:    r.Name,
		X:       r.X,
		Y:       r.Y,
		Heading: r.Heading,
		Display: r.Display,
	}
}
