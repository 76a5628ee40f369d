// Command socgraph loads a directed graph from a whitespace-separated
// edge-list file and prints structural views of it: vertex/edge counts and
// adjacency by default, optionally an ego network, the transpose, or the
// full strongly-connected-component decomposition.
//
// Usage:
//
//	socgraph [options] <edge-list-file>
//
// Options:
//
//	-h, --help         print usage
//	-e, --egonet=<id>  print the ego network of vertex <id>
//	-s, --sccs         print every strongly connected component
//	-t, --transpose    print the transposed graph
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/timtadh/getopt"

	"github.com/mkarulin/socgraph/digraph"
	"github.com/mkarulin/socgraph/edgelist"
	"github.com/mkarulin/socgraph/egonet"
	"github.com/mkarulin/socgraph/scc"
)

const usage = `socgraph [options] <edge-list-file>

Analyze a directed graph given as "from to" integer pairs, one per line.

Options
    -h, --help         print this message
    -e, --egonet=<id>  print the ego network of vertex <id>
    -s, --sccs         print every strongly connected component
    -t, --transpose    print the transposed graph
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	args, optargs, err := getopt.GetOpt(argv, "he:st", []string{"help", "egonet=", "sccs", "transpose"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not process args: %v\n%s", err, usage)
		return 1
	}

	var (
		egoCenter    int64
		wantEgonet   bool
		wantSCCs     bool
		wantTranspos bool
	)
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			fmt.Print(usage)
			return 0
		case "-e", "--egonet":
			egoCenter, err = strconv.ParseInt(oa.Arg(), 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid egonet center %q: %v\n", oa.Arg(), err)
				return 1
			}
			wantEgonet = true
		case "-s", "--sccs":
			wantSCCs = true
		case "-t", "--transpose":
			wantTranspos = true
		}
	}
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "expected exactly one edge-list file, got %v\n%s", args, usage)
		return 1
	}

	g, err := edgelist.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "load %s: %v\n", args[0], err)
		return 1
	}

	fmt.Printf("vertices: %d\n", g.VertexCount())
	fmt.Printf("edges: %d\n", g.EdgeCount())
	printGraph(g)

	if wantEgonet {
		net, err := egonet.Extract(g, egoCenter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "egonet: %v\n", err)
			return 1
		}
		fmt.Printf("\negonet of %d (%d vertices, %d edges):\n", egoCenter, net.VertexCount(), net.EdgeCount())
		printGraph(net)
	}

	if wantTranspos {
		tr, err := digraph.Transpose(g)
		if err != nil {
			fmt.Fprintf(os.Stderr, "transpose: %v\n", err)
			return 1
		}
		fmt.Printf("\ntranspose:\n")
		printGraph(tr)
	}

	if wantSCCs {
		res, err := scc.Decompose(g)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sccs: %v\n", err)
			return 1
		}
		fmt.Printf("\nstrongly connected components: %d\n", len(res.Components))
		for i, c := range res.Components {
			fmt.Printf("component %d:\n", i)
			printGraph(c)
		}
	}

	return 0
}

// printGraph writes one "v -> [targets]" line per vertex, ascending.
func printGraph(g *digraph.Graph) {
	for _, v := range g.Vertices() {
		nbs, err := g.OutNeighbors(v)
		if err != nil {
			continue
		}
		fmt.Printf("%d -> %v\n", v, nbs)
	}
}
