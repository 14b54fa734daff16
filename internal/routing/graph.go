package routing

import (
	"fmt"
	"sort"
	"strings"
)

// Department is one node of the topology and the weights of its direct links.
type Department struct {
	Name  string
	Links map[string]int64
}

// Edge is a weighted link to a neighbouring department.
type Edge struct {
	To     string
	Weight int64
}

// DepartmentGraph is an immutable weighted undirected graph. It is safe for
// concurrent readers.
type DepartmentGraph struct {
	nodes []string
	adj   map[string][]Edge // every node has an entry, possibly empty
}

// DefaultTopology returns the company network the registry ships with.
func DefaultTopology() []Department {
	return []Department{
		{Name: "Finance", Links: map[string]int64{"IT": 2, "HR": 4}},
		{Name: "IT", Links: map[string]int64{"Finance": 2, "Marketing": 3}},
		{Name: "Marketing", Links: map[string]int64{"IT": 3, "HR": 6}},
		{Name: "HR", Links: map[string]int64{"Finance": 4, "Marketing": 6}},
	}
}

// NewDepartmentGraph validates departments and builds the adjacency lists.
// Every link must point at a declared department, carry a positive weight
// and be mirrored by the target with the same weight.
func NewDepartmentGraph(departments []Department) (*DepartmentGraph, error) {
	if len(departments) == 0 {
		return nil, fmt.Errorf("%w: no departments", ErrInvalidTopology)
	}

	links := make(map[string]map[string]int64, len(departments))
	nodes := make([]string, 0, len(departments))
	for _, d := range departments {
		if strings.TrimSpace(d.Name) == "" {
			return nil, fmt.Errorf("%w: empty department name", ErrInvalidTopology)
		}
		if _, dup := links[d.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate department %q", ErrInvalidTopology, d.Name)
		}
		links[d.Name] = d.Links
		nodes = append(nodes, d.Name)
	}

	adj := make(map[string][]Edge, len(nodes))
	for _, from := range nodes {
		adj[from] = []Edge{}
		for _, to := range sortedKeys(links[from]) {
			w := links[from][to]
			back, declared := links[to]
			if !declared {
				return nil, fmt.Errorf("%w: %s links to unknown department %q", ErrInvalidTopology, from, to)
			}
			if to == from {
				return nil, fmt.Errorf("%w: %s links to itself", ErrInvalidTopology, from)
			}
			if w <= 0 {
				return nil, fmt.Errorf("%w: %s->%s weight=%d must be positive", ErrInvalidTopology, from, to, w)
			}
			if bw, ok := back[from]; !ok || bw != w {
				return nil, fmt.Errorf("%w: %s->%s weight=%d is not mirrored by %s", ErrInvalidTopology, from, to, w, to)
			}
			adj[from] = append(adj[from], Edge{To: to, Weight: w})
		}
	}

	return &DepartmentGraph{nodes: nodes, adj: adj}, nil
}

// Nodes returns the department names in declaration order.
func (g *DepartmentGraph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

func (g *DepartmentGraph) Has(name string) bool {
	_, ok := g.adj[name]
	return ok
}

// Weight returns the weight of the direct link a-b.
func (g *DepartmentGraph) Weight(a, b string) (int64, bool) {
	for _, e := range g.adj[a] {
		if e.To == b {
			return e.Weight, true
		}
	}
	return 0, false
}

func (g *DepartmentGraph) neighbors(name string) []Edge {
	return g.adj[name]
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
