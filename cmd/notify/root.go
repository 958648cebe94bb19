package notify

import (
	"fmt"
	"os"
	"time"

	"github.com/Dario48true/nvrpc/cmd/util"
	"github.com/Dario48true/nvrpc/rpc/client"
	"github.com/Dario48true/nvrpc/rpc/common"
	"github.com/spf13/cobra"
)

var (
	rpcClient *client.Client

	// NotifyCmd sends a single notification without waiting for a reply
	NotifyCmd = &cobra.Command{
		Use:   "notify [method] [params...]",
		Short: "Send a fire-and-forget notification",
		Long: util.WrapString(`Sends a notification frame for the given method and exits. The peer sends no response. ` +
			`Each param is parsed as JSON; params that are not valid JSON are sent as plain strings.`),
		Args:              cobra.MinimumNArgs(1),
		PersistentPreRunE: setupClient,
		RunE:              runNotify,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common RPC flags to the notify command
	util.SetupRPCClientFlags(NotifyCmd)

	// A notification has no response to synchronize on, so the client
	// lingers briefly to let the writer flush before the process exits
	NotifyCmd.PersistentFlags().Int("linger", 100, util.WrapString("Milliseconds to wait for the notification to be flushed before exiting"))
}

// setupClient creates and starts the RPC client
func setupClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	config := util.GetClientConfig()
	common.InitLoggers(config.LogLevel)

	c, err := util.GetCodec()
	if err != nil {
		return err
	}

	t, err := util.GetTransport()
	if err != nil {
		return err
	}

	rpcClient, err = client.NewClient(*config, t, c)
	if err != nil {
		return err
	}
	rpcClient.Start()

	return nil
}

// runNotify sends the notification and lingers until it is flushed
func runNotify(cmd *cobra.Command, args []string) error {
	defer rpcClient.Close()

	method := args[0]
	params := util.ParseParams(args[1:])

	if err := rpcClient.Notify(method, params); err != nil {
		return fmt.Errorf("notify %s failed: %w", method, err)
	}

	linger, _ := cmd.Flags().GetInt("linger")
	time.Sleep(time.Duration(linger) * time.Millisecond)

	fmt.Println("notification sent")

	if util.MetricsRequested() {
		client.WriteMetrics(os.Stdout)
	}
	return nil
}
