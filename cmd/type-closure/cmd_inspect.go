package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"type-closure/internal/analyze"
)

func newInspectCmd(a *app) *cobra.Command {
	var (
		dump bool
		long bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <type>",
		Short: "Print the facets of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.introspector()
			if err != nil {
				return err
			}

			facets, err := in.Resolve(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dump {
				spew.Fdump(out, facets)
				return nil
			}

			printFacets(out, analyze.NewTypeStringer(!long), facets)

			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the raw facets")
	cmd.Flags().BoolVar(&long, "long", false, "Render full package paths instead of their alias")

	return cmd
}

func printFacets(w io.Writer, s *analyze.TypeStringer, f *analyze.Facets) {
	fmt.Fprintln(w, s.Name(f.Name))

	if f.Supertype != nil {
		fmt.Fprintf(w, "  extends %s\n", s.TypeString(*f.Supertype))
	}
	for _, i := range f.Interfaces {
		fmt.Fprintf(w, "  implements %s\n", s.TypeString(i))
	}
	for _, field := range f.Fields {
		fmt.Fprintf(w, "  field %s %s\n", field.Name, s.TypeString(field.Type))
	}
	for _, c := range f.Constructors {
		fmt.Fprintf(w, "  constructor %s(%s)\n", c.Name, joinTypes(s, c.Params))
	}
	for _, m := range f.Methods {
		if m.Inherited {
			fmt.Fprintf(w, "  method %s (inherited)\n", s.MethodString(m))
			continue
		}
		fmt.Fprintf(w, "  method %s\n", s.MethodString(m))
	}
}

func joinTypes(s *analyze.TypeStringer, refs []analyze.TypeRef) string {
	var out string
	for i, r := range refs {
		if i > 0 {
			out += ", "
		}
		out += s.TypeString(r)
	}

	return out
}
