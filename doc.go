// Package lvsearch is a small toolkit of generic containers and graph
// searches built on top of them.
//
// What is inside?
//
//   - Hash tables: linear and triangular probing, separate chaining (plain or sorted chains)
//   - Priority queues: d-ary binary heap and an indexed queue with decrease-key
//   - Traversals: BFS, iterative DFS, topological sort, cycle detection
//   - Guided search: best-first toward a target under a caller distance estimate
//   - Shortest paths: Dijkstra, Bellman-Ford (negative cycles), DAG shortest and longest paths
//
// Layout:
//
//	core/        - generic Digraph[N], Edge[N] and the ShortestPaths result
//	hashtable/   - Table[K,V] implementations sharing one interface
//	pq/          - Heap[V,P] and Indexed[V,P]
//	bfs/, dfs/   - traversals
//	guided/      - best-first search to one target
//	dijkstra/, bellmanford/, dagsp/ - single-source shortest paths
//	builder/     - deterministic graph generators for tests and benchmarks
//	cmd/lvsearch - CLI running the searches over YAML graph files
//
// Quick example:
//
//	g := core.NewDigraph[string]()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	sp, _ := dijkstra.Dijkstra(g, "A")
//	fmt.Println(sp.Distance("C")) // 3
//
//	go get github.com/katalvlaran/lvsearch
package lvsearch
