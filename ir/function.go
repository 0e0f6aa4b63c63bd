package ir

// Function is the materialized result of parsing one function body: its
// block graph, edge list, and the handful of counters the builder tracks
// while working (spec.md §3).
type Function struct {
	Name string
	Type int // typetab.ID of the function type

	Blocks           []*Block
	Edges            []*Edge
	DeclaredBlockCnt int

	InstructionCount int
}

// AddEdge creates and dual-links a CFG edge from `from` to `to`, owned by
// the function (cfg_create_edge in the original).
func (f *Function) AddEdge(from, to *Block) *Edge {
	e := &Edge{From: from, To: to}
	f.Edges = append(f.Edges, e)
	from.Out = append(from.Out, e)
	to.In = append(to.In, e)
	return e
}
