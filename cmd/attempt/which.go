package attempt

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/attempt/pkg/errors"
)

func newWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "which <kind> [files...]",
		Short:   MsgWhichShort,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			l, err := loadTaxonomy(cmd.Context(), loadOptions{files: args[1:], optional: true})
			if err != nil {
				return err
			}

			k, ok := l.reg.Lookup(args[0])
			if !ok {
				return errors.Newf(errors.ErrNotFound, MsgErrUnknownKind, args[0]).
					WithDetail("kind", args[0])
			}

			label := MsgWhichDefined
			if k.IsHost() {
				label = MsgWhichHost
			}
			fmt.Fprintf(out, "%s  %s\n", formatBold(k.Path()), render(out, mutedStyle, label))

			children := l.reg.Children(k)
			if len(children) > 0 {
				names := make([]string, 0, len(children))
				for _, c := range children {
					names = append(names, c.Name())
				}
				fmt.Fprintf(out, MsgWhichChildren, strings.Join(names, ", "))
			}
			return nil
		},
	}
}
