package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"netexposure/internal/wifi"
)

// wifiChannelCmd reports the channel of the currently connected Wi-Fi
// network, handy when picking a quiet channel for a lab access point.
var wifiChannelCmd = &cobra.Command{
	Use:   "wifi-channel",
	Short: "Show the channel of the active Wi-Fi connection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		channel, err := wifi.Channel()
		if err != nil {
			return err
		}
		fmt.Printf("Current Wi-Fi channel: %s\n", channel)
		return nil
	},
}
