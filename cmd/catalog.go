/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/colorconv/catalog"
	"github.com/mmuldo/colorconv/report"
)

const catalogTemplate = `{% for s in sections %}{{ s.Name }}
{% for t in s.Templates %}  {{ t.Key|ljust:28 }} {{ t.Name }}
{% endfor %}{% endfor %}`

type section struct {
	Name      string
	Templates []*catalog.Template
}

// newCatalogCmd returns the catalog command.
func newCatalogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "catalog",
		Short: "Lists the color models in the result document",
		Args:  cobra.NoArgs,
		RunE:  runCatalog,
	}
	c.Flags().String("section", "", "only list models of this section")
	c.Flags().Bool("json", false, "print the templates as JSON")
	return c
}

func init() {
	rootCmd.AddCommand(newCatalogCmd())
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat, e := catalog.Load()
	if e != nil {
		return e
	}
	only, _ := cmd.Flags().GetString("section")
	asJSON, _ := cmd.Flags().GetBool("json")

	var sections []section
	for _, name := range cat.Sections() {
		if only != "" && only != name {
			continue
		}
		s := section{Name: name}
		for _, k := range cat.Keys {
			if t := cat.Get(k); t.Section == name {
				s.Templates = append(s.Templates, t)
			}
		}
		sections = append(sections, s)
	}
	if len(sections) == 0 {
		return usage(fmt.Errorf("argument --section: unknown section %q", only))
	}

	if asJSON {
		m := make(map[string]interface{})
		for _, s := range sections {
			for _, t := range s.Templates {
				m[t.Key] = t.Fields()
			}
		}
		b, e := json.Marshal(m)
		if e != nil {
			return e
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	}

	tpl, e := report.FromString(catalogTemplate)
	if e != nil {
		return e
	}
	out, e := tpl.Execute(map[string]interface{}{"sections": sections})
	if e != nil {
		return e
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
