package attempt

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/attempt/pkg/config"
	"github.com/arthur-debert/attempt/pkg/errors"
)

func newExportCmd() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:     "export [files...]",
		Short:   MsgExportShort,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := exportFormat(format, output)
			if err != nil {
				return err
			}

			l, err := loadTaxonomy(cmd.Context(), loadOptions{files: args})
			if err != nil {
				return err
			}

			if output == "" {
				return config.Export(cmd.OutOrStdout(), l.reg, f)
			}

			file, err := os.Create(output)
			if err != nil {
				return errors.Wrapf(err, errors.ErrExport, "cannot create %s", output)
			}
			defer func() { _ = file.Close() }()

			if err := config.Export(file, l.reg, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgExportWritten, l.reg.Count(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)

	return cmd
}

// exportFormat uses the flag when set, then the output extension, then TOML.
func exportFormat(flag, output string) (config.Format, error) {
	if flag != "" {
		return config.ParseFormat(flag)
	}
	if output != "" {
		return config.FormatForPath(output)
	}
	return config.FormatTOML, nil
}
