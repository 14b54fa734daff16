package routing

import "errors"

var (
	// ErrInvalidStart is returned when a query names a department absent from the graph.
	ErrInvalidStart = errors.New("invalid start department")

	// ErrInvalidTopology wraps every validation failure of NewDepartmentGraph.
	ErrInvalidTopology = errors.New("invalid department topology")
)
