package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func signCmd() *cobra.Command {
	var keyPath, in string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a file or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := loadKeypair(keyPath)
			if err != nil {
				return err
			}
			message, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), kp.Sign(message))
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyPath, "key", "k", "", "PEM keypair file")
	cmd.Flags().StringVarP(&in, "in", "i", "-", "file to sign (- for stdin)")
	cmd.MarkFlagRequired("key")
	return cmd
}
