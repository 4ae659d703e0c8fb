package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alan-mat/kgsearch/internal/api"
	"github.com/olekukonko/tablewriter"
)

const maxDescriptionLength = 60

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, entities []*api.Entity) error {
	if len(entities) == 0 {
		_, err := fmt.Fprintln(w, "no entities found")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Types", "Score", "Description")

	for _, e := range entities {
		row := []string{
			e.ID,
			e.Name,
			strings.Join(e.Types, ", "),
			strconv.FormatFloat(e.Score, 'f', 2, 64),
			shorten(e.Description, maxDescriptionLength),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}

func printWarnings(warnings []api.Warning) {
	for _, warn := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", warn.Param, warn.Message)
	}
}

func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
