package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// signingKeyCmd represents the signing-key command
var signingKeyCmd = &cobra.Command{
	Use:   "signing-key",
	Short: "Manage the token signing key",
	Long:  `Manage the token signing key`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'signing-key' requires a subcommand (generate)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(signingKeyCmd)
}
