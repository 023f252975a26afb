package cmd

import (
	"fmt"

	"github.com/disiqueira/gotree"
)

// Summary renders the run as a tree of workspace members and their outcome.
func (r *GenerateResult) Summary() string {
	header := r.Discovery.Manifest
	if r.Discovery.Fallback {
		header += " (single package)"
	}
	tree := gotree.New(header)

	outcomes := r.Outcomes
	for _, m := range r.Discovery.Members {
		if !m.Eligible() {
			tree.Add(fmt.Sprintf("%s (excluded: %s)", m.Path, m.Excluded))
			continue
		}

		// Eligible members and outcomes share their order.
		if len(outcomes) == 0 {
			continue
		}
		o := outcomes[0]
		outcomes = outcomes[1:]

		if o.Err != nil {
			tree.Add(fmt.Sprintf("%s (rejected)", m.Path)).Add(o.Err.Error())
			continue
		}
		tree.Add(fmt.Sprintf("%s -> %s", m.Path, o.Image.Tag()))
	}

	return tree.Print()
}
