package attempt

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/attempt/pkg/registry"
)

func newCheckCmd() *cobra.Command {
	var (
		strict bool
		base   string
	)

	cmd := &cobra.Command{
		Use:     "check [files...]",
		Short:   MsgCheckShort,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			l, err := loadTaxonomy(cmd.Context(), loadOptions{files: args, base: base, strict: strict})
			if err != nil {
				return err
			}

			fmt.Fprint(out, render(out, successStyle,
				fmt.Sprintf(MsgCheckOK, len(l.defined), hostParents(l.reg))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	cmd.Flags().StringVar(&base, "base", "", MsgFlagBase)

	return cmd
}

// hostParents counts the registered kinds that extend a host kind
func hostParents(reg *registry.Registry) int {
	n := 0
	for _, k := range reg.Kinds() {
		if k.Parent().IsHost() {
			n++
		}
	}
	return n
}
