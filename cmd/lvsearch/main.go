// Command lvsearch solves N-Queens boards, grid mazes and route networks with
// the best-first search engine.
package main

func main() {
	Execute()
}
