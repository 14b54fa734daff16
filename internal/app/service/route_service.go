package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"hr-bot/internal/routing"
)

// DistanceRow holds the shortest distances from one department.
type DistanceRow struct {
	From      string
	Distances map[string]int64
}

type RouteService struct {
	Graph *routing.DepartmentGraph
	Async *AsyncService
	Log   *logrus.Entry
}

func NewRouteService(graph *routing.DepartmentGraph, async *AsyncService, log *logrus.Entry) *RouteService {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &RouteService{Graph: graph, Async: async, Log: log.WithField("component", "routes")}
}

func (s *RouteService) Departments() []string {
	return s.Graph.Nodes()
}

func (s *RouteService) ShortestDistances(start string) (map[string]int64, error) {
	dist, err := s.Graph.ShortestDistances(start)
	if err != nil {
		s.Log.WithField("start", start).WithError(err).Info("route query rejected")
		return nil, err
	}
	return dist, nil
}

// DistanceTable computes the shortest distances from every department on the
// worker pool. Rows come back in department order.
func (s *RouteService) DistanceTable(ctx context.Context) ([]DistanceRow, error) {
	nodes := s.Graph.Nodes()
	rows := make([]DistanceRow, len(nodes))
	errs := make(chan error, len(nodes))

	for i, n := range nodes {
		i, n := i, n
		go func() {
			v, err := s.Async.Submit(ctx, func(context.Context) (any, error) {
				return s.Graph.ShortestDistances(n)
			})
			if err != nil {
				errs <- fmt.Errorf("distances from %s: %w", n, err)
				return
			}
			rows[i] = DistanceRow{From: n, Distances: v.(map[string]int64)}
			errs <- nil
		}()
	}

	var firstErr error
	for range nodes {
		if err := <-errs; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	s.Log.WithField("departments", len(nodes)).Debug("distance table computed")
	return rows, nil
}
