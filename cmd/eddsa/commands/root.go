package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	eddsa "github.com/go-i2p/go-eddsa"
)

var (
	digestName string
	logLevel   string
	scheme     *eddsa.Scheme
)

// Execute runs the eddsa command line with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "eddsa",
		Short:        "Ed25519 key generation, signing and verification",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			eddsa.LogInit(eddsa.ParseLogLevel(logLevel))

			s, err := eddsa.SchemeByName(digestName)
			if err != nil {
				return err
			}
			scheme = s
			return nil
		},
	}

	root.PersistentFlags().StringVar(&digestName, "digest", eddsa.DIGEST_SHA512,
		"digest: sha512, blake2b-512 or sha3-512")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "error",
		"log level: debug, info, warn, error or fatal")

	root.AddCommand(keygenCmd(), pubkeyCmd(), signCmd(), verifyCmd())
	return root
}

// readInput reads path, or the command's stdin when path is "" or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// loadKeypair reads a PEM keypair and derives it under the selected scheme.
func loadKeypair(path string) (*eddsa.Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return scheme.KeypairFromPEM(data)
}
