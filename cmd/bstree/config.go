package main

import (
	"github.com/companion-uyan/data-structure-algorithm/config"
	"github.com/companion-uyan/data-structure-algorithm/container/tree"
	"github.com/companion-uyan/data-structure-algorithm/errors"
	"github.com/companion-uyan/data-structure-algorithm/workload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Run is the Binder of the flags describing what bstree runs:
// either a single workload given on the command line or the
// workloads of a file
type Run struct {
	Workload    workload.Workload
	File        string
	Concurrency int
	Print       bool
}

// Bind implementation of config.Binder for Run
func (r *Run) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.String("variant", "redblack", "balancing strategy: avl or redblack")
	flags.Int("from", 0, "first key of the range of keys to insert")
	flags.Int("to", 15, "last key of the range of keys to insert")
	flags.IntSlice("extra", nil, "keys inserted after the range")
	flags.Bool("shuffle", false, "insert the keys in random order")
	flags.Int64("seed", 1, "seed used to shuffle the keys")
	flags.IntSlice("delete", nil, "keys deleted after all the insertions")
	flags.StringSlice("orders", []string{"inorder"},
		"traversals to report: preorder, inorder, postorder, levelorder")
	flags.Bool("validate", false, "validate the tree after every operation")
	flags.String("workloads", "", "yaml file with the workloads to run instead of the flags")
	flags.Int("concurrency", 4, "number of workloads run at the same time")
	flags.Bool("print", false, "draw the resulting trees")
	return nil
}

// Configure implementation of config.Binder for Run
func (r *Run) Configure(v *viper.Viper) error {
	r.Workload = workload.Workload{
		Name:     "command line",
		Variant:  v.GetString("variant"),
		Keys:     &workload.Keys{From: v.GetInt("from"), To: v.GetInt("to")},
		Extra:    v.GetIntSlice("extra"),
		Shuffle:  v.GetBool("shuffle"),
		Seed:     v.GetInt64("seed"),
		Delete:   v.GetIntSlice("delete"),
		Orders:   v.GetStringSlice("orders"),
		Validate: v.GetBool("validate"),
	}
	r.File = v.GetString("workloads")
	r.Concurrency = v.GetInt("concurrency")
	r.Print = v.GetBool("print")

	if r.Concurrency <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"concurrency must be positive, got %d", r.Concurrency)
	}

	if r.File != "" {
		return nil
	}

	if _, err := tree.ParseVariant(r.Workload.Variant); err != nil {
		return errors.New(errors.ErrCodeInvalidConfig, "%s", err.Error())
	}

	if r.Workload.Keys.From > r.Workload.Keys.To {
		return errors.New(errors.ErrCodeInvalidConfig,
			"from %d is greater than to %d", r.Workload.Keys.From, r.Workload.Keys.To)
	}

	return nil
}

// Workloads returns the workloads selected by the flags
func (r *Run) Workloads() ([]workload.Workload, error) {
	if r.File == "" {
		return []workload.Workload{r.Workload}, nil
	}

	return workload.LoadFile(r.File)
}

// Config is the configuration of bstree
type Config struct {
	Logging config.Logging
	Run     Run
}

// Use implementation of config.Config
func (c *Config) Use() string {
	return "bstree"
}

// EnvPrefix implementation of config.Config
func (c *Config) EnvPrefix() string {
	return "BSTREE"
}

// Binders implementation of config.Config
func (c *Config) Binders() []config.Binder {
	return []config.Binder{&c.Logging, &c.Run}
}
