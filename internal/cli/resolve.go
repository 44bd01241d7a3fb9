package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/reoring/polyjson"
)

type resolveFlags struct {
	family string
	sel    string
	dump   bool
}

func newResolveCommand(a *app) *cobra.Command {
	var f resolveFlags
	cmd := &cobra.Command{
		Use:   "resolve [file|-]",
		Short: "Resolve a JSON object or array and print the chosen variants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return a.resolve(cmd.OutOrStdout(), data, f)
		},
	}
	cmd.Flags().StringVar(&f.family, "family", "item", "family to resolve into")
	cmd.Flags().StringVar(&f.sel, "select", "", "gjson path selecting the sub-document to resolve")
	cmd.Flags().BoolVar(&f.dump, "dump", false, "dump resolved values")
	return cmd
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(path)
	return data, errors.Wrapf(err, "read %s", path)
}

func (a *app) resolve(out io.Writer, data []byte, f resolveFlags) error {
	if f.sel != "" {
		res := gjson.GetBytes(data, f.sel)
		if !res.Exists() {
			return errors.Errorf("select %q matched nothing", f.sel)
		}
		data = []byte(res.Raw)
	}
	cat, err := a.catalog()
	if err != nil {
		return err
	}
	h, ok := cat.Resolver().Family(f.family)
	if !ok {
		return errors.Errorf("unknown family %q", f.family)
	}
	opt, err := a.cfg.ParseOpt()
	if err != nil {
		return err
	}
	opt.Warnings = func(it polyjson.Issue) {
		a.logger.Warn("parse warning", "code", it.Code, "path", it.Path, "message", it.Message)
	}
	tree, err := polyjson.ParseBytes(data, opt)
	if err != nil {
		return err
	}

	nodes := []any{tree}
	if arr, ok := tree.([]any); ok {
		nodes = arr
	}
	for i, node := range nodes {
		v, o, err := cat.Resolver().ResolveWithOutcome(node, h.BaseType())
		if err != nil {
			return errors.Wrapf(err, "entry %d", i)
		}
		printOutcome(out, i, o, "")
		if f.dump {
			spew.Fdump(out, v)
		}
	}
	return nil
}

func printOutcome(out io.Writer, i int, o polyjson.Outcome, indent string) {
	tag := o.Tag.Raw
	if o.Tag.Canonical != "" && o.Tag.Canonical != tag {
		tag += " -> " + o.Tag.Canonical
	}
	prefix := fmt.Sprintf("[%d] ", i)
	if indent != "" {
		prefix = indent
	}
	fmt.Fprintf(out, "%s%s: %s (tag %q, %s)\n", prefix, o.Family, o.Type, tag, o.Tag.Status)
	for _, n := range o.Notes {
		fmt.Fprintf(out, "%s  note: %s at %s: %s\n", strings.Repeat(" ", len(prefix)), n.Code, n.Path, n.Hint)
	}
	fields := make([]string, 0, len(o.Nested))
	for k := range o.Nested {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	for _, k := range fields {
		printOutcome(out, i, o.Nested[k], strings.Repeat(" ", len(prefix))+k+" -> ")
	}
}
