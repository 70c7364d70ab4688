package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// signingKeyGenerateCmd represents the signing-key > generate command
var signingKeyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a token signing key",
	Long: `
Generate a token signing key

Use this command to generate a new Base64-encoded 256 bit signing key. Once generated, this key should be placed into the environment of
the notes server. It will be used to sign and verify the bearer tokens issued at login.

Example:

$ export NOTES_TOKEN_SIGNING_KEY="$(notesctl signing-key generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		bytes := make([]byte, 32)
		if _, err := rand.Read(bytes); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to generate key:", err)
			os.Exit(1)
		}
		fmt.Printf("%s", base64.StdEncoding.Strict().EncodeToString(bytes))
	},
}

func init() {
	signingKeyCmd.AddCommand(signingKeyGenerateCmd)
}
