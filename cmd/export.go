package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <user-id>",
	Short: "Export a learner's full state as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		bundle, err := svc.Export(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding export: %w", err)
		}
		data = append(data, '\n')

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		fmt.Printf("Exported %s to %s\n", args[0], out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Write to a file instead of stdout")
}
