package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamesprial/jianshu-mcp/internal/projector"
)

// operationDoc is the wire shape of one operation.
type operationDoc struct {
	Name      string        `json:"name"`
	Kind      string        `json:"kind"`
	Variables []variableDoc `json:"variables"`
	Fragments []string      `json:"fragments,omitempty"`
	Document  string        `json:"document,omitempty"`
}

type variableDoc struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

func newDocumentCmd(opts *rootOptions) *cobra.Command {
	var (
		format   string
		withText bool
	)
	cmd := &cobra.Command{
		Use:   "document",
		Short: "Print the name, kind and variable table of every operation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, pkg, err := opts.load("")
			if err != nil {
				return err
			}
			docs := describe(pkg, withText)

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(docs)
			case "text":
				for _, d := range docs {
					vars := make([]string, len(d.Variables))
					for i, v := range d.Variables {
						vars[i] = "$" + v.Name + ": " + v.Type
					}
					fmt.Fprintf(out, "%-8s %-16s (%s)\n", d.Kind, d.Name, strings.Join(vars, ", "))
					if withText {
						fmt.Fprintln(out, d.Document)
						fmt.Fprintln(out)
					}
				}
				return nil
			default:
				return fmt.Errorf("unknown format %q: want text or json", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text|json")
	cmd.Flags().BoolVar(&withText, "text", false, "include the full operation text")
	return cmd
}

func describe(pkg *projector.Package, withText bool) []operationDoc {
	docs := make([]operationDoc, 0, len(pkg.Operations))
	for _, op := range pkg.Operations {
		d := operationDoc{Name: op.Name, Kind: string(op.Kind), Variables: []variableDoc{}}
		for _, v := range op.Variables {
			d.Variables = append(d.Variables, variableDoc{Name: v.Name, Type: v.Type, Required: v.Required})
		}
		for _, f := range op.Fragments {
			d.Fragments = append(d.Fragments, f.Name)
		}
		if withText {
			parts := []string{op.Text}
			for _, f := range op.Fragments {
				parts = append(parts, f.Text)
			}
			d.Document = strings.Join(parts, "\n")
		}
		docs = append(docs, d)
	}
	return docs
}
