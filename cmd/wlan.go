package cmd

import (
	"fmt"
	"os"

	"github.com/smazurov/halshim/internal/logging"
	"github.com/smazurov/halshim/internal/wlanmac"
	"github.com/spf13/cobra"
)

// CreateWLANMacCmd creates the wlan-mac command.
func CreateWLANMacCmd() *cobra.Command {
	var path string
	var logJSON bool

	cmd := &cobra.Command{
		Use:   "wlan-mac",
		Short: "Print the factory WLAN MAC address",
		Long:  `Reads the persist partition address file and prints the address when its OUI belongs to the vendor.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			initCommandLogging(logJSON)

			resolver := wlanmac.NewResolver(logging.GetLogger("wlanmac"))
			resolver.Path = path
			if err := resolver.InitQMI(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			defer resolver.Deinit()

			addr, err := resolver.Resolve()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr)
		},
	}

	cmd.Flags().StringVar(&path, "path", wlanmac.DefaultPath, "Address file")
	cmd.Flags().BoolVar(&logJSON, "log-json", false, "Log in JSON format")

	return cmd
}
