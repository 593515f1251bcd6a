// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm on core.Graph[N], including negative-cycle
// detection.
//
// Unlike dijkstra, negative edge weights are accepted. Instead of looping
// forever on a negative cycle, BellmanFord stops after |V| rounds and
// returns a *NegativeCycleError carrying the cycle's node sequence and
// total weight:
//
//	sp, err := bellmanford.BellmanFord(g, "S")
//	var nce *bellmanford.NegativeCycleError[string]
//	if errors.As(err, &nce) {
//	    fmt.Println(nce.Cycle, nce.Weight)
//	}
//
// By default the loop ends after the first round that relaxes nothing;
// WithFullRounds forces all |V| rounds.
package bellmanford
