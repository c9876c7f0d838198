// Package gridsapi exposes grid sessions over HTTP: create, inspect, edit,
// reset, search and delete.
package gridsapi

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// CreateRequest asks for a new grid; a zero Dimension selects the default.
type CreateRequest struct {
	Dimension int `json:"dimension"`
}

// CreateResponse identifies a new grid session.
type CreateResponse struct {
	ID        uuid.UUID `json:"id"`
	Dimension int       `json:"dimension"`
}

// GridResponse is a rendered snapshot of a grid session.
type GridResponse struct {
	ID        uuid.UUID      `json:"id"`
	Dimension int            `json:"dimension"`
	Rows      []string       `json:"rows"`
	Start     *grid.Position `json:"start"`
	Target    *grid.Position `json:"target"`
}

// CellRequest edits one cell. Kind is one of empty, start, target, obstacle.
type CellRequest struct {
	Row  *int   `json:"row" binding:"required"`
	Col  *int   `json:"col" binding:"required"`
	Kind string `json:"kind" binding:"required"`
}

// RunRequest selects the search strategy (bfs or astar).
type RunRequest struct {
	Strategy string `json:"strategy" binding:"required"`
}

// RunResponse reports a finished search and its full trace.
type RunResponse struct {
	Strategy   string          `json:"strategy"`
	Found      bool            `json:"found"`
	Path       []grid.Position `json:"path"`
	Cost       float64         `json:"cost"`
	Operations int             `json:"operations"`
	Trace      []search.Event  `json:"trace"`
}
