package attempt

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/attempt/pkg/kinds"
	"github.com/arthur-debert/attempt/pkg/registry"
)

func newTreeCmd() *cobra.Command {
	var (
		strict, hosts bool
		base          string
	)

	cmd := &cobra.Command{
		Use:     "tree [files...]",
		Short:   MsgTreeShort,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadTaxonomy(cmd.Context(), loadOptions{files: args, base: base, strict: strict, optional: true})
			if err != nil {
				return err
			}
			return printTree(cmd.OutOrStdout(), l.reg, hosts)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	cmd.Flags().StringVar(&base, "base", "", MsgFlagBase)
	cmd.Flags().BoolVar(&hosts, "hosts", false, MsgFlagHosts)

	return cmd
}

func printTree(w io.Writer, reg *registry.Registry, hosts bool) error {
	if reg.Count() == 0 && !hosts {
		_, err := fmt.Fprintln(w, MsgNoKinds)
		return err
	}
	out, err := pterm.DefaultTree.WithRoot(buildTree(w, reg, hosts)).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// buildTree returns a node holding the root kind. Host kinds appear only
// when asked for or when a registered kind extends them.
func buildTree(w io.Writer, reg *registry.Registry, hosts bool) pterm.TreeNode {
	var node func(k *kinds.Kind) pterm.TreeNode
	node = func(k *kinds.Kind) pterm.TreeNode {
		n := pterm.TreeNode{Text: k.Name()}
		if k.IsHost() {
			n.Text = render(w, mutedStyle, k.Name()+" ("+MsgWhichHost+")")
		}
		for _, child := range reg.Children(k) {
			n.Children = append(n.Children, node(child))
		}
		return n
	}

	root := pterm.TreeNode{Text: kinds.Root.Name()}
	for _, k := range reg.Children(kinds.Root) {
		root.Children = append(root.Children, node(k))
	}
	for _, h := range kinds.Hosts() {
		if hosts || len(reg.Children(h)) > 0 {
			root.Children = append(root.Children, node(h))
		}
	}
	return pterm.TreeNode{Children: []pterm.TreeNode{root}}
}
