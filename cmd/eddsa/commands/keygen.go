package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func keygenCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a keypair",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("output file required (--out)")
			}

			kp, err := scheme.GenerateKeypair(nil)
			if err != nil {
				return err
			}
			data, err := kp.MarshalPEM()
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Public key: %s\n", kp.PublicKey())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "PEM file to write the keypair to")
	return cmd
}
