package maze

import (
	"sort"
	"sync"
)

// Graph is an in-memory undirected maze. Neighbor lists are kept sorted so
// that a single-worker search visits them in a reproducible order.
type Graph struct {
	start     NodeID
	adjacency map[NodeID][]NodeID
	goals     map[NodeID]bool

	mu      sync.Mutex
	players [][]NodeID
}

// NewGraph creates an empty graph whose search starts at start.
func NewGraph(start NodeID) *Graph {
	return &Graph{
		start:     start,
		adjacency: map[NodeID][]NodeID{start: nil},
		goals:     make(map[NodeID]bool),
	}
}

// AddEdge connects a and b in both directions. Duplicate edges are ignored.
func (g *Graph) AddEdge(a, b NodeID) *Graph {
	g.link(a, b)
	if a != b {
		g.link(b, a)
	}
	return g
}

// AddNode registers a node that may have no edges.
func (g *Graph) AddNode(node NodeID) *Graph {
	if _, ok := g.adjacency[node]; !ok {
		g.adjacency[node] = nil
	}
	return g
}

// AddGoal marks node as a goal.
func (g *Graph) AddGoal(node NodeID) *Graph {
	g.AddNode(node)
	g.goals[node] = true
	return g
}

func (g *Graph) link(from, to NodeID) {
	list := g.adjacency[from]
	i := sort.Search(len(list), func(i int) bool { return list[i] >= to })
	if i < len(list) && list[i] == to {
		return
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = to
	g.adjacency[from] = list
}

// Start returns the start node.
func (g *Graph) Start() NodeID {
	return g.start
}

// Neighbors returns a copy of the sorted neighbor list of node.
func (g *Graph) Neighbors(node NodeID) []NodeID {
	list := g.adjacency[node]
	out := make([]NodeID, len(list))
	copy(out, list)
	return out
}

// HasGoal reports whether node is a goal.
func (g *Graph) HasGoal(node NodeID) bool {
	return g.goals[node]
}

// Nodes returns every node in ascending order.
func (g *Graph) Nodes() []NodeID {
	nodes := make([]NodeID, 0, len(g.adjacency))
	for n := range g.adjacency {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	return nodes
}

// Reachable returns the number of nodes reachable from the start, the start
// included.
func (g *Graph) Reachable() int {
	seen := map[NodeID]bool{g.start: true}
	stack := []NodeID{g.start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range g.adjacency[n] {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return len(seen)
}

// NewPlayer creates a token standing on node.
func (g *Graph) NewPlayer(node NodeID) PlayerID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.players = append(g.players, []NodeID{node})
	return PlayerID(len(g.players) - 1)
}

// Move records that player stepped onto node. Unknown players are ignored.
func (g *Graph) Move(player PlayerID, node NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if int(player) < 0 || int(player) >= len(g.players) {
		return
	}
	g.players[player] = append(g.players[player], node)
}

// Trails returns a copy of every player's visited nodes in creation order.
func (g *Graph) Trails() [][]NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([][]NodeID, len(g.players))
	for i, trail := range g.players {
		out[i] = append([]NodeID(nil), trail...)
	}
	return out
}
