// Package edgelist reads and writes digraph.Graph values in the plain
// edge-list format common to social-network datasets: one edge per line,
// two whitespace-separated integers interpreted as "from to".
//
// Reading auto-registers both endpoints before inserting the edge, so the
// strict precondition of digraph.Graph.AddEdge always holds. Blank lines are
// skipped, as are comment lines (prefix "#" by default, configurable with
// WithComments). Any other malformed line aborts the read with ErrBadRecord
// wrapped with its line number.
//
// Writing emits one "from to" line per distinct edge, ascending by (from,
// to), so output is deterministic and Read(Write(g)) reproduces g's vertex
// and edge sets. Isolated vertices have no edge to carry them and are NOT
// round-tripped; datasets in this format do not represent them.
//
// Error policy follows the library convention: sentinel errors, callers
// branch with errors.Is, context attached via %w wrapping.
package edgelist
