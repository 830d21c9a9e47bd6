// Package taskflow runs a directed acyclic graph of tasks on a bounded
// number of goroutines. Tasks declare precedence with Precede; an executor
// starts a task once all of its predecessors finished and a worker slot is
// free.
package taskflow

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// TaskNode is a unit of work in a TaskFlow.
type TaskNode struct {
	fn   func()
	deps []*TaskNode
	done chan struct{}
}

// Precede declares that the node must finish before succ may start.
func (n *TaskNode) Precede(succ *TaskNode) {
	succ.deps = append(succ.deps, n)
}

// TaskFlow is a graph of task nodes.
type TaskFlow struct {
	nodes []*TaskNode
}

// NewTaskFlow returns an empty task graph.
func NewTaskFlow() *TaskFlow {
	return &TaskFlow{}
}

// Emplace adds a task to the flow and returns its node for precedence
// declarations.
func (f *TaskFlow) Emplace(fn func()) *TaskNode {
	n := &TaskNode{fn: fn, done: make(chan struct{})}
	f.nodes = append(f.nodes, n)
	return n
}

// Executor runs task flows on a bounded number of goroutines.
type Executor struct {
	threads int64
}

// NewExecutor returns an executor running at most threads tasks at once. A
// thread count below one is raised to one.
func NewExecutor(threads int) *Executor {
	if threads < 1 {
		threads = 1
	}
	return &Executor{threads: int64(threads)}
}

// Run executes the flow and blocks until every task finished. A worker slot
// is only claimed after all predecessors finished, so waiting tasks never
// starve running ones.
func (e *Executor) Run(flow *TaskFlow) {
	sem := semaphore.NewWeighted(e.threads)
	var g errgroup.Group
	for _, n := range flow.nodes {
		n := n
		g.Go(func() error {
			for _, dep := range n.deps {
				<-dep.done
			}
			if err := sem.Acquire(context.Background(), 1); err != nil {
				return err
			}
			n.fn()
			sem.Release(1)
			close(n.done)
			return nil
		})
	}
	g.Wait()
}
