package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ftauth/authcatalog/internal/catalog"
	"github.com/ftauth/authcatalog/pkg/model"
)

func printProviders(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROVIDER\tID")
	for _, p := range model.Providers() {
		fmt.Fprintf(tw, "%s\t%s\n", p.Label(), p.ID())
	}
	return tw.Flush()
}

func printSections(w io.Writer, c *catalog.Catalog, screen string) error {
	sections, err := c.Sections(screen)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sections)
}
