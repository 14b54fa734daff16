package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hr-bot/internal/routing"
)

type topologyFile struct {
	Departments []departmentDTO `yaml:"departments"`
}

type departmentDTO struct {
	Name  string           `yaml:"name"`
	Links map[string]int64 `yaml:"links"`
}

// LoadTopology reads the department network from a YAML file. An empty path
// yields routing.DefaultTopology. The result is not validated here,
// routing.NewDepartmentGraph does that.
func LoadTopology(path string) ([]routing.Department, error) {
	if path == "" {
		return routing.DefaultTopology(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read departments file: %w", err)
	}
	return ParseTopology(data)
}

func ParseTopology(data []byte) ([]routing.Department, error) {
	var f topologyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse departments file: %w", err)
	}
	if len(f.Departments) == 0 {
		return nil, fmt.Errorf("parse departments file: %w: no departments", routing.ErrInvalidTopology)
	}
	out := make([]routing.Department, 0, len(f.Departments))
	for _, d := range f.Departments {
		out = append(out, routing.Department{Name: d.Name, Links: d.Links})
	}
	return out, nil
}
