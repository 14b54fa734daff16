package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"hr-bot/config"
	"hr-bot/internal/app/service"
	"hr-bot/internal/domain"
	"hr-bot/internal/repository/sqlite"
	"hr-bot/internal/routing"
	"hr-bot/internal/store/memory"
	"hr-bot/pkg/workerpool"
)

// app wires the registry, the department graph and the worker pool from config.
type app struct {
	cfg       *config.Config
	log       *logrus.Entry
	pool      *workerpool.WorkerPool
	employees *service.EmployeeService
	routes    *service.RouteService
}

func newApp(cfg *config.Config) (*app, error) {
	log := setupLogging(cfg.LogLevel)

	departments, err := config.LoadTopology(cfg.DepartmentsFile)
	if err != nil {
		return nil, err
	}
	graph, err := routing.NewDepartmentGraph(departments)
	if err != nil {
		return nil, err
	}

	seed := memory.DefaultEmployees()
	if cfg.SeedDB != "" {
		if seed, err = sqlite.LoadSeed(cfg.SeedDB); err != nil {
			return nil, err
		}
		if err := checkSeed(seed); err != nil {
			return nil, fmt.Errorf("seed %s: %w", cfg.SeedDB, err)
		}
	}
	log.WithFields(logrus.Fields{"employees": len(seed), "departments": len(graph.Nodes())}).Info("registry ready")

	pool := workerpool.NewWorkerPool(cfg.Workers, cfg.QueueSize)
	return &app{
		cfg:       cfg,
		log:       log,
		pool:      pool,
		employees: service.NewEmployeeService(memory.NewEmployeeStore(seed...), log),
		routes:    service.NewRouteService(graph, service.NewAsyncService(pool), log),
	}, nil
}

func (a *app) Close() {
	a.pool.Close()
}

func checkSeed(seed []domain.Employee) error {
	seen := make(map[int]bool, len(seed))
	for _, e := range seed {
		if seen[e.ID] {
			return fmt.Errorf("duplicate employee id %d", e.ID)
		}
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("employee id %d: %w", e.ID, domain.ErrEmptyName)
		}
		if e.Salary < 0 {
			return fmt.Errorf("employee id %d: %w: %d", e.ID, domain.ErrNegativeSalary, e.Salary)
		}
		seen[e.ID] = true
	}
	return nil
}

func setupLogging(level string) *logrus.Entry {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("level", level).Warn("unknown LOG_LEVEL, using info")
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	return logrus.WithField("app", "hr-bot")
}
