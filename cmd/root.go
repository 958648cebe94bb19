package cmd

import (
	"fmt"
	"os"

	"github.com/Dario48true/nvrpc/cmd/call"
	"github.com/Dario48true/nvrpc/cmd/notify"
	"github.com/Dario48true/nvrpc/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "nvrpc",
		Short: "msgpack-RPC client for editor automation",
		Long: fmt.Sprintf(`nvrpc (v%s)

A bidirectional msgpack-RPC client library and command line tool,
speaking the wire protocol of Neovim and similar embeddable hosts
over TCP, unix socket and stdio transports.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of nvrpc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("nvrpc v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(call.CallCmd)
	RootCmd.AddCommand(notify.NotifyCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "codec"
	RootCmd.PersistentFlags().String(key, "msgpack", util.WrapString("frame codec to use (msgpack, json)"))
	key = "transport"
	RootCmd.PersistentFlags().String(key, "tcp", util.WrapString("transport to use (tcp, unix, stdio)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
