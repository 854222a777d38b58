package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"beanpath/internal/document"
	"beanpath/navigator"
)

func newGetCmd(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a path",
		Long: `Print the value at a path of a YAML or JSON document.

A path through a missing value prints null.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, nav, err := a.open(args[0])
			if err != nil {
				return err
			}

			value, err := nav.GetValue(a.resolve(nav, args[1]))
			if err != nil {
				return err
			}

			if dump {
				_, err := cmd.OutOrStdout().Write([]byte(spew.Sdump(value)))
				return err
			}

			return document.Encode(cmd.OutOrStdout(), value, a.cfg.Output.Format)
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "Print a Go dump of the value instead")

	return cmd
}

func newSetCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Write a value at a path",
		Long: `Write a value at a path of a YAML or JSON document, creating missing
intermediate maps. The value is read as YAML: 42, true, "42", [a, b], {k: v}, null.

The updated document is printed, or written back with --write.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, nav, err := a.open(args[0])
			if err != nil {
				return err
			}

			value, err := document.ParseValue(args[2])
			if err != nil {
				return err
			}

			if err := nav.SetValue(a.resolve(nav, args[1]), value); err != nil {
				return err
			}

			if write {
				return document.WriteFile(*doc, args[0])
			}

			return document.Encode(cmd.OutOrStdout(), *doc, a.cfg.Output.Format)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the file")

	return cmd
}

func newNamesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "names <file> [path]",
		Short: "List the readable properties at a path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, nav, err := a.open(args[0])
			if err != nil {
				return err
			}

			if len(args) == 2 {
				if nav, err = nav.ForProperty(a.resolve(nav, args[1])); err != nil {
					return err
				}
			}

			for _, name := range nav.GetterNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

// open loads a document and wraps it.
func (a *app) open(path string) (*any, *navigator.Navigator, error) {
	doc, err := document.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	a.logger.Debugw("Document loaded", "path", path, "format", document.FormatOf(path))

	nav, err := a.navigate(&doc)
	if err != nil {
		return nil, nil, err
	}

	return &doc, nav, nil
}
