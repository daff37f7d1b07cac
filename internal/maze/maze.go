// Package maze defines the maze collaborator consumed by the solver: node
// identifiers, neighbor lookup, goal tests, visualization tokens and the
// sequential predecessor walk that turns discovery links into a path.
package maze

// NodeID identifies one position in a maze graph.
type NodeID int

// PlayerID is a visualization handle for one search head.
type PlayerID int

// Maze is the read-mostly graph a search runs over. Implementations must be
// safe for concurrent use; NewPlayer and Move only feed visualization.
type Maze interface {
	Start() NodeID
	Neighbors(node NodeID) []NodeID
	HasGoal(node NodeID) bool
	NewPlayer(node NodeID) PlayerID
	Move(player PlayerID, node NodeID)
}
