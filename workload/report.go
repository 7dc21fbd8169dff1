package workload

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/companion-uyan/data-structure-algorithm/container/interval"
	"github.com/companion-uyan/data-structure-algorithm/container/tree"
	"github.com/companion-uyan/data-structure-algorithm/errors"
	"github.com/companion-uyan/data-structure-algorithm/logs"
)

// Traversal is the sequence of keys visited in one order
type Traversal struct {
	Order tree.Order
	Keys  []int
}

// Report describes the tree left by a workload
type Report struct {
	Name    string
	Variant tree.Variant

	// Inserted and Deleted count the operations applied
	Inserted int
	Deleted  int

	// Missing are the keys that were asked to be deleted
	// but were not in the tree at the time
	Missing []int

	Len    int
	Height int

	// Min and Max are only meaningful when Len is not 0
	Min int
	Max int

	Traversals []Traversal

	// Runs are the keys of the tree compacted into disjoint
	// ranges of consecutive integers
	Runs []interval.Int

	// Err is the first invariant violation found, if any
	Err error

	tree *tree.Tree[int]
}

// Log implementation of logs.Loggable for Report
func (r *Report) Log(fields logs.Fields) {
	fields.Add("workload", r.Name)
	fields.Add("variant", r.Variant.String())
	fields.Add("inserted", r.Inserted)
	fields.Add("deleted", r.Deleted)
	fields.Add("missing", len(r.Missing))
	fields.Add("len", r.Len)
	fields.Add("height", r.Height)
	fields.Add("runs", len(r.Runs))
	if r.Err != nil {
		fields.Add("error", r.Err.Error())
	}
}

// Tree returns the tree the workload ran on
func (r *Report) Tree() *tree.Tree[int] {
	return r.tree
}

func (r *Report) validate(ctx context.Context, logger logs.Logger, step string) bool {
	err := r.tree.Validate()
	if err == nil {
		return true
	}

	r.Err = fmt.Errorf("after %s: %w", step, err)
	r.Len = r.tree.Len()
	r.Height = r.tree.Height()
	logger.Error(ctx, "tree failed validation", r)
	return false
}

func (r *Report) summarize(orders []tree.Order) {
	t := r.tree
	r.Len = t.Len()
	r.Height = t.Height()
	r.Min, _ = t.Min()
	r.Max, _ = t.Max()

	keys := t.Traverse(tree.InOrder)
	runs := interval.NewIntSet()
	for _, key := range keys {
		runs.InsertValue(key)
	}
	r.Runs = runs.Intervals()

	for _, order := range orders {
		recursive := t.Traverse(order)
		if iterative := t.TraverseIterative(order); !slices.Equal(recursive, iterative) {
			r.Err = errors.New(errors.ErrCodeInvariantViolation,
				"%s traversals disagree: %v and %v", order, recursive, iterative)
			return
		}

		r.Traversals = append(r.Traversals, Traversal{Order: order, Keys: recursive})
	}
}

// Print writes the report as plain text
func (r *Report) Print(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "workload %s (%s)\n", r.Name, r.Variant)
	fmt.Fprintf(&b, "  inserted %d, deleted %d", r.Inserted, r.Deleted)
	if len(r.Missing) > 0 {
		fmt.Fprintf(&b, ", not found %v", r.Missing)
	}
	b.WriteString("\n")

	if r.Len == 0 {
		fmt.Fprintf(&b, "  empty tree\n")
	} else {
		fmt.Fprintf(&b, "  len %d, height %d, min %d, max %d\n", r.Len, r.Height, r.Min, r.Max)
	}

	if len(r.Runs) > 0 {
		runs := make([]string, 0, len(r.Runs))
		for _, run := range r.Runs {
			runs = append(runs, run.String())
		}
		fmt.Fprintf(&b, "  runs %s\n", strings.Join(runs, " "))
	}

	for _, traversal := range r.Traversals {
		fmt.Fprintf(&b, "  %s: %s\n", traversal.Order, joinKeys(traversal.Keys))
	}

	if r.Err != nil {
		fmt.Fprintf(&b, "  validation failed: %s\n", r.Err.Error())
	} else {
		b.WriteString("  validation ok\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// PrintTree draws the tree of the report on w
func (r *Report) PrintTree(w io.Writer) {
	r.tree.Print(w)
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprint(key)
	}
	return strings.Join(parts, " ")
}
