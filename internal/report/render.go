package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"mysql-typemap/primitive"
)

// WriteYAML writes the tables as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report YAML: %w", err)
	}

	return enc.Close()
}

// WriteText writes one aligned block per table.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i, t := range r.Tables {
		if i > 0 {
			fmt.Fprintln(tw)
		}

		fmt.Fprintf(tw, "%s\n", t.Struct)
		fmt.Fprintln(tw, "  COLUMN\tGO TYPE\tSTORE TYPE\tDB TYPE\tSIZE\tFLAGS")

		for _, c := range t.Columns {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
				c.Name, c.GoType, c.StoreType, c.DbType, sizeString(c.Size), flags(c))
		}
	}

	return tw.Flush()
}

func sizeString(size *int) string {
	if size == nil {
		return "-"
	}

	return strconv.Itoa(*size)
}

func flags(c Column) string {
	var out string
	add := func(flag string) {
		if out != "" {
			out += ","
		}
		out += flag
	}

	if c.Key {
		add("key")
	}
	if c.Index {
		add("index")
	}
	if c.Unicode && c.mapping != nil && c.mapping.DbType().Family() == primitive.FamilyText {
		add("unicode")
	}

	if out == "" {
		return "-"
	}

	return out
}
