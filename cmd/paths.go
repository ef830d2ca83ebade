package cmd

import (
	"fmt"
	"strings"

	"github.com/oselot/stitchpath/internal/curriculum"
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Browse the curriculum",
}

var pathsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all learning paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := curriculum.Default()
		paths := catalog.Paths()

		fmt.Printf("%-16s  %-28s  %5s  %6s\n", "ID", "Name", "Items", "Weight")
		fmt.Println(strings.Repeat("─", 62))
		for _, p := range paths {
			fmt.Printf("%-16s  %-28s  %5d  %6.1f\n", p.ID, p.Name, len(p.Items), p.Weight)
		}

		fmt.Printf("\n%d paths, %d items\n", len(paths), catalog.TotalContentCount())
		return nil
	},
}

var pathsShowCmd = &cobra.Command{
	Use:   "show <path-id>",
	Short: "Show a path's items in curriculum order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := curriculum.Default().Path(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s), weight %.1f\n\n", p.Name, p.ID, p.Weight)
		fmt.Printf("%3s  %-20s  %-28s  %9s\n", "#", "ID", "Name", "Expected")
		fmt.Println(strings.Repeat("─", 66))
		for i, it := range p.Items {
			expected := "-"
			if it.ExpectedMs > 0 {
				expected = fmt.Sprintf("%.1fs", float64(it.ExpectedMs)/1000)
			}
			fmt.Printf("%3d  %-20s  %-28s  %9s\n", i+1, it.ID, it.Name, expected)
		}
		return nil
	},
}

func init() {
	pathsCmd.AddCommand(pathsListCmd)
	pathsCmd.AddCommand(pathsShowCmd)
}
