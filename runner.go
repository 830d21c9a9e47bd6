package polymerge

import (
	"cmp"

	"github.com/tdewolff/polymerge/taskflow"
)

// MergeRunner merges the polygons of a Merger on several goroutines. Each
// task tree node becomes a task preceded by its child tasks, so independent
// regions merge concurrently while parents wait for their children.
type MergeRunner[P cmp.Ordered, T Coord] struct {
	merger  *Merger[P, T]
	threads int
	flow    *taskflow.TaskFlow
}

// NewMergeRunner returns a runner merging on at most threads goroutines.
func NewMergeRunner[P cmp.Ordered, T Coord](merger *Merger[P, T], threads int) *MergeRunner[P, T] {
	return &MergeRunner[P, T]{merger: merger, threads: threads}
}

// Run merges all polygons added to the merger and blocks until done.
func (r *MergeRunner[P, T]) Run() {
	r.merger.PreProcess()

	tree := r.merger.TaskTree()
	r.scheduleTasks(tree)

	executor := taskflow.NewExecutor(r.threads)
	executor.Run(r.flow)

	r.merger.PostProcess()
}

func (r *MergeRunner[P, T]) scheduleTasks(tree *RectTree[T, *PolygonData[P, T]]) {
	r.flow = taskflow.NewTaskFlow()
	node := &tree.RectNode
	task := r.flow.Emplace(func() { r.merger.mergeRegion(node) })
	r.scheduleSubTasks(node, task)
}

func (r *MergeRunner[P, T]) scheduleSubTasks(parent *RectNode[T, *PolygonData[P, T]], successor *taskflow.TaskNode) {
	for _, child := range parent.Children() {
		child := child
		task := r.flow.Emplace(func() { r.merger.mergeRegion(child) })
		task.Precede(successor)
		r.scheduleSubTasks(child, task)
	}
}
