package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/reoring/polyjson/client"
)

func newFetchCommand(a *app) *cobra.Command {
	var ids []int
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch items from the API (GW2_API_* config) and print their types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(ids) == 0 {
				return errors.New("--ids is required")
			}
			cfg, err := client.ConfigFromEnv()
			if err != nil {
				return err
			}
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			c, err := client.New(cfg, cat, client.WithLogger(a.logger))
			if err != nil {
				return err
			}
			items, err := c.Items(cmd.Context(), ids...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, it := range items {
				common := it.Common()
				fmt.Fprintf(out, "%d\t%T\t%s\n", common.ID, it, common.Name)
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&ids, "ids", nil, "comma-separated item ids")
	return cmd
}
