package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	eddsa "github.com/go-i2p/go-eddsa"
)

func verifyCmd() *cobra.Command {
	var pubB64, sigB64, in string
	var strict bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature over a file or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := eddsa.PublicKeyFromBase64(pubB64)
			if err != nil {
				return err
			}
			sig, err := eddsa.SignatureFromBase64(sigB64)
			if err != nil {
				return err
			}
			message, err := readInput(cmd, in)
			if err != nil {
				return err
			}

			if strict {
				err = scheme.VerifyStrict(pub, message, sig)
			} else {
				err = scheme.Verify(pub, message, sig)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signature OK")
			return nil
		},
	}

	cmd.Flags().StringVar(&pubB64, "pub", "", "public key (I2P base64)")
	cmd.Flags().StringVar(&sigB64, "sig", "", "signature (I2P base64)")
	cmd.Flags().StringVarP(&in, "in", "i", "-", "signed file (- for stdin)")
	cmd.Flags().BoolVar(&strict, "strict", false, "also reject small-order keys and commitments")
	cmd.MarkFlagRequired("pub")
	cmd.MarkFlagRequired("sig")
	return cmd
}
