package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pubkeyCmd() *cobra.Command {
	var keyPath string

	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key of a keypair",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := loadKeypair(keyPath)
			if err != nil {
				return err
			}
			pub := kp.PublicKey()
			fmt.Fprintf(cmd.OutOrStdout(), "Public key: %s\nFingerprint: %s\n", pub, pub.Fingerprint())
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyPath, "key", "k", "", "PEM keypair file")
	cmd.MarkFlagRequired("key")
	return cmd
}
