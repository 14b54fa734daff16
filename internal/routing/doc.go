// Package routing models the company departments as a weighted undirected
// graph and answers single-source shortest-distance queries over it.
//
// The graph is fixed at construction. ShortestDistances runs Dijkstra's
// algorithm with a container/heap frontier:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the frontier may hold one entry per relaxation.
//
// The frontier does not support decrease-key. A shorter distance to a node
// pushes a new entry and entries whose distance exceeds the best-known one
// are skipped when popped.
package routing
