package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newFamiliesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List the variant families, their tag locations and tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, h := range cat.Resolver().Families() {
				locs := make([]string, 0, len(h.Locations()))
				for _, l := range h.Locations() {
					locs = append(locs, l.String())
				}
				tags := h.Tags()
				fmt.Fprintf(out, "%s\n  base: %s\n  discriminator: %s\n  tags (%d): %s\n",
					h.Name(), h.BaseType(), strings.Join(locs, " > "), len(tags), strings.Join(tags, ", "))
				if d, ok := cat.Descriptors().Get(h.Name()); ok && d.Doc != "" {
					fmt.Fprintf(out, "  doc: %s\n", d.Doc)
				}
			}
			return nil
		},
	}
}
