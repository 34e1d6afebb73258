package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bibparse/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported citation formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := format.DefaultRegistry.List()
		sort.Strings(names)

		fmt.Printf("%-10s %-12s %s\n", "Format", "Extensions", "Description")
		fmt.Printf("%-10s %-12s %s\n", "------", "----------", "-----------")
		for _, name := range names {
			f, ok := format.Get(name)
			if !ok {
				continue
			}
			exts := strings.Join(f.Extensions(), ", ")
			fmt.Printf("%-10s %-12s %s\n", f.Name(), exts, f.Description())
		}

		return nil
	},
}
