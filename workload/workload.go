// Package workload drives the balanced trees with scripted sequences
// of insertions and deletions and reports the resulting shape, the
// requested traversals and the outcome of the validation of the tree.
package workload

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/companion-uyan/data-structure-algorithm/concurrent"
	"github.com/companion-uyan/data-structure-algorithm/container/interval"
	"github.com/companion-uyan/data-structure-algorithm/container/tree"
	"github.com/companion-uyan/data-structure-algorithm/errors"
	"github.com/companion-uyan/data-structure-algorithm/logs"
)

// maxRangeKeys bounds the number of keys a range can generate
const maxRangeKeys = 1 << 24

// Keys is the closed range of keys [From, To] inserted by
// a workload
type Keys struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Workload is a scripted sequence of operations on a single tree
type Workload struct {
	// Name identifies the workload in logs and reports
	Name string `yaml:"name"`

	// Variant of the tree, "avl" or "redblack"
	Variant string `yaml:"variant"`

	// Keys is the optional range of keys inserted first
	Keys *Keys `yaml:"keys"`

	// Extra keys inserted after the range. They may repeat keys
	// already inserted
	Extra []int `yaml:"extra"`

	// Shuffle randomizes the insertion order using Seed
	Shuffle bool  `yaml:"shuffle"`
	Seed    int64 `yaml:"seed"`

	// Delete lists the keys removed, one occurrence each, after
	// all the insertions
	Delete []int `yaml:"delete"`

	// Orders are the traversals included in the report
	Orders []string `yaml:"orders"`

	// Validate checks the invariants of the tree after every
	// insertion and deletion instead of only at the end
	Validate bool `yaml:"validate"`
}

// Log implementation of logs.Loggable for Workload
func (w Workload) Log(fields logs.Fields) {
	fields.Add("workload", w.Name)
	fields.Add("variant", w.Variant)
	if w.Keys != nil {
		fields.Add("from", w.Keys.From)
		fields.Add("to", w.Keys.To)
	}
	fields.Add("extra", len(w.Extra))
	fields.Add("delete", len(w.Delete))
	fields.Add("shuffle", w.Shuffle)
}

// plan is a workload with its parameters resolved
type plan struct {
	variant tree.Variant
	inserts []int
	orders  []tree.Order
}

func (w Workload) plan() (*plan, error) {
	variant, err := tree.ParseVariant(w.Variant)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidWorkload,
			"workload %q: %s", w.Name, err.Error())
	}

	var inserts []int
	if w.Keys != nil {
		if w.Keys.From > w.Keys.To {
			return nil, errors.New(errors.ErrCodeInvalidWorkload,
				"workload %q: key range from %d is greater than to %d",
				w.Name, w.Keys.From, w.Keys.To)
		}

		keys := interval.NewInt(w.Keys.From, w.Keys.To)
		if keys.Len() > maxRangeKeys || keys.Len() <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidWorkload,
				"workload %q: key range %v is too large", w.Name, keys)
		}

		inserts = make([]int, 0, keys.Len()+len(w.Extra))
		for i := 0; i < keys.Len(); i++ {
			inserts = append(inserts, keys.Min()+i)
		}
	}
	inserts = append(inserts, w.Extra...)

	if w.Shuffle {
		r := rand.New(rand.NewSource(w.Seed))
		r.Shuffle(len(inserts), func(i, j int) {
			inserts[i], inserts[j] = inserts[j], inserts[i]
		})
	}

	orders := make([]tree.Order, 0, len(w.Orders))
	for _, name := range w.Orders {
		order, err := tree.ParseOrder(name)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidWorkload,
				"workload %q: %s", w.Name, err.Error())
		}
		orders = append(orders, order)
	}

	return &plan{variant: variant, inserts: inserts, orders: orders}, nil
}

// Run executes the workload on a new tree. The error is only
// set when the workload cannot be run, or ctx is done before it
// completes. A tree that fails its validation is reported in
// Report.Err
func (w Workload) Run(ctx context.Context, logger logs.Logger) (*Report, error) {
	p, err := w.plan()
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "running workload", w)

	t := tree.New[int](p.variant)
	report := &Report{Name: w.Name, Variant: p.variant, tree: t}

	for _, key := range p.inserts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t.Insert(key)
		report.Inserted++

		if w.Validate && !report.validate(ctx, logger, fmt.Sprintf("insert %d", key)) {
			return report, nil
		}
	}

	for _, key := range w.Delete {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !t.Delete(key) {
			report.Missing = append(report.Missing, key)
			continue
		}

		report.Deleted++
		if w.Validate && !report.validate(ctx, logger, fmt.Sprintf("delete %d", key)) {
			return report, nil
		}
	}

	if !report.validate(ctx, logger, "completion") {
		return report, nil
	}

	report.summarize(p.orders)
	if report.Err != nil {
		logger.Error(ctx, "traversals disagree", report)
		return report, nil
	}

	logger.Info(ctx, "workload completed", report)
	return report, nil
}

// RunAll runs each workload on its own tree with at most
// concurrency workloads in flight. Reports are returned in the
// order of the workloads. A workload that cannot run leaves a
// nil report and its error is returned once all the others
// have completed
func RunAll(
	ctx context.Context,
	logger logs.Logger,
	workloads []Workload,
	concurrency int,
) ([]*Report, error) {
	suppliers := make([]concurrent.Supplier[*Report], 0, len(workloads))
	for i, w := range workloads {
		traceID := int64(i + 1)
		w := w
		suppliers = append(suppliers, concurrent.SupplierFunc[*Report](
			func(ctx context.Context) (*Report, error) {
				return w.Run(logs.WithTraceID(ctx, traceID), logger)
			}))
	}

	results := concurrent.BatchSliceWithOpts(ctx, suppliers, concurrent.BatchOpts{
		Concurrency: concurrency,
	})

	var firstErr error
	reports := make([]*Report, len(results))
	for i, res := range results {
		if err := res.Err(); err != nil {
			logger.Error(ctx, "workload failed", logs.MapFields{
				"workload": workloads[i].Name,
				"error":    err.Error(),
			})

			if firstErr == nil {
				firstErr = fmt.Errorf("workload %d %q: %w", i, workloads[i].Name, err)
			}
			continue
		}

		reports[i] = res.Value()
	}

	return reports, firstErr
}
