package cayley

import "sort"

// sccFrame is one suspended node of the iterative Tarjan walk: the node and
// the next label to follow from it.
type sccFrame struct {
	v    int
	next int
}

// SCCs returns the strongly connected components of the graph: maximal node
// sets in which every node reaches every other. In a right Cayley graph
// these are the R-classes' reachability skeleton, so they are a cheap first
// look at the semigroup's structure.
//
// Components are returned with members ascending, ordered by smallest
// member. The traversal is Tarjan's algorithm on an explicit stack, so deep
// word chains cannot overflow the goroutine stack.
//
// Complexity: O(V·L) time, O(V) extra memory.
func (g *Graph) SCCs() [][]int {
	n := len(g.adj)
	order := make([]int, n) // 1-based discovery order; 0 = unvisited
	low := make([]int, n)
	onStack := make([]bool, n)
	stack := make([]int, 0, n)
	next := 0

	var components [][]int
	frames := make([]sccFrame, 0, n)

	for root := 0; root < n; root++ {
		if order[root] != 0 {
			continue
		}
		frames = append(frames[:0], sccFrame{v: root})

		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			v := f.v

			// 1. First touch: number the node and push it on the SCC stack.
			if f.next == 0 {
				next++
				order[v] = next
				low[v] = next
				stack = append(stack, v)
				onStack[v] = true
			}

			// 2. Follow the next unexplored label, suspending this frame.
			if f.next < g.labels {
				w := g.adj[v][f.next]
				f.next++
				if order[w] == 0 {
					frames = append(frames, sccFrame{v: w})
				} else if onStack[w] && order[w] < low[v] {
					low[v] = order[w]
				}
				continue
			}

			// 3. All labels done: if v is a component root, pop its members.
			if low[v] == order[v] {
				var comp []int
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				sort.Ints(comp)
				components = append(components, comp)
			}

			// 4. Return to the parent frame, propagating the low link.
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := frames[len(frames)-1].v
				if low[v] < low[parent] {
					low[parent] = low[v]
				}
			}
		}
	}

	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })

	return components
}
