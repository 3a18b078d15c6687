package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HenningWaack/ccAcmePairing/internal/sec"
)

func hashpwCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hashpw",
		Short: "Hash a password for the accounts section of the config file",
		Long: "Reads a password and prints its bcrypt hash. Passwords may be provided\n" +
			"via stdin or through the interactive prompt.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			passwd, err := promptPassword("password: ")
			if err != nil {
				return err
			}
			hash, err := sec.HashPassword(string(passwd))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return err
		},
	}
}
