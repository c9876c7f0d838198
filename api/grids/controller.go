package gridsapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/service"
)

// Sessions is the session store the controller works against.
type Sessions interface {
	Create(n int) (uuid.UUID, error)
	Get(id uuid.UUID) (service.Snapshot, error)
	With(id uuid.UUID, fn func(*engine.Engine) error) error
	Delete(id uuid.UUID) error
}

// Controller serves the /grids routes.
type Controller struct {
	sessions         Sessions
	defaultDimension int
}

// NewController initializes a Controller. defaultDimension is used when a
// create request carries no dimension.
func NewController(s Sessions, defaultDimension int) *Controller {
	return &Controller{sessions: s, defaultDimension: defaultDimension}
}

// Register registers the grid routes.
func (gc *Controller) Register(route *gin.RouterGroup) {
	grids := route.Group("/grids")
	{
		grids.POST("", gc.create)
		grids.GET("/:id", gc.get)
		grids.DELETE("/:id", gc.remove)
		grids.PUT("/:id/cells", gc.setCell)
		grids.POST("/:id/reset", gc.reset)
		grids.POST("/:id/runs", gc.run)
	}
}

// create handles grid creation requests.
func (gc *Controller) create(ctx *gin.Context) {
	var request CreateRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	n := request.Dimension
	if n == 0 {
		n = gc.defaultDimension
	}

	id, err := gc.sessions.Create(n)
	if err != nil {
		abort(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, CreateResponse{ID: id, Dimension: n})
}

// get returns the rendered grid.
func (gc *Controller) get(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	snap, err := gc.sessions.Get(id)
	if err != nil {
		abort(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, GridResponse{
		ID:        snap.ID,
		Dimension: snap.Dimension,
		Rows:      snap.Rows,
		Start:     snap.Start,
		Target:    snap.Target,
	})
}

// remove deletes the session.
func (gc *Controller) remove(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	if err := gc.sessions.Delete(id); err != nil {
		abort(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// setCell applies one caller edit.
func (gc *Controller) setCell(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var request CellRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind, err := grid.ParseKind(request.Kind)
	if err != nil || kind == grid.Visited || kind == grid.Path {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "kind must be one of empty, start, target, obstacle"})
		return
	}

	err = gc.sessions.With(id, func(eng *engine.Engine) error {
		return eng.SetCellKind(*request.Row, *request.Col, kind)
	})
	if err != nil {
		abort(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// reset clears the grid.
func (gc *Controller) reset(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	err := gc.sessions.With(id, func(eng *engine.Engine) error {
		eng.Reset()
		return nil
	})
	if err != nil {
		abort(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// run executes a search and returns its outcome with the full trace.
func (gc *Controller) run(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var request RunRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	strategy, err := engine.ParseStrategy(request.Strategy)
	if err != nil {
		abort(ctx, err)
		return
	}

	var (
		out   search.Outcome
		trace []search.Event
	)
	err = gc.sessions.With(id, func(eng *engine.Engine) error {
		var runErr error
		out, runErr = eng.Run(ctx.Request.Context(), strategy, search.WithOnStep(func(ev search.Event) {
			trace = append(trace, ev)
		}))
		return runErr
	})
	if err != nil {
		abort(ctx, err)
		return
	}

	path := out.Path
	if path == nil {
		path = []grid.Position{}
	}
	if trace == nil {
		trace = []search.Event{}
	}
	ctx.JSON(http.StatusOK, RunResponse{
		Strategy:   out.Strategy,
		Found:      out.Found,
		Path:       path,
		Cost:       out.Cost,
		Operations: out.Operations,
		Trace:      trace,
	})
}

// sessionID parses the :id parameter, answering 400 when it is not a uuid.
func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid grid id"})
		return uuid.Nil, false
	}
	return id, true
}

// abort answers with the status matching err.
func abort(ctx *gin.Context, err error) {
	ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, grid.ErrOutOfBounds),
		errors.Is(err, grid.ErrInvalidDimension),
		errors.Is(err, service.ErrDimensionTooLarge),
		errors.Is(err, engine.ErrUnknownStrategy):
		return http.StatusBadRequest
	case errors.Is(err, grid.ErrInvalidAssignment):
		return http.StatusConflict
	case errors.Is(err, grid.ErrMissingEndpoints):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
