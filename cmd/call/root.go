package call

import (
	"fmt"
	"os"

	"github.com/Dario48true/nvrpc/cmd/util"
	"github.com/Dario48true/nvrpc/rpc/client"
	"github.com/Dario48true/nvrpc/rpc/common"
	"github.com/spf13/cobra"
)

var (
	rpcClient *client.Client

	// CallCmd sends a single request and waits for the response
	CallCmd = &cobra.Command{
		Use:   "call [method] [params...]",
		Short: "Send a request and print the response",
		Long: util.WrapString(`Sends a request frame for the given method, blocks until the peer responds and prints the result as JSON. ` +
			`Each param is parsed as JSON; params that are not valid JSON are sent as plain strings.`),
		Args:              cobra.MinimumNArgs(1),
		PersistentPreRunE: setupClient,
		RunE:              runCall,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common RPC flags to the call command
	util.SetupRPCClientFlags(CallCmd)
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

// runCall performs the request and prints the result
func runCall(cmd *cobra.Command, args []string) error {
	defer rpcClient.Close()

	method := args[0]
	params := util.ParseParams(args[1:])

	result, err := rpcClient.Call(method, params)
	if err != nil {
		return fmt.Errorf("call %s failed: %w", method, err)
	}

	fmt.Println(util.FormatResult(result))

	if util.MetricsRequested() {
		client.WriteMetrics(os.Stdout)
	}
	return nil
}
