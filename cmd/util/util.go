package util

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Dario48true/nvrpc/rpc/codec"
	"github.com/Dario48true/nvrpc/rpc/common"
	"github.com/Dario48true/nvrpc/rpc/transport"
	"github.com/Dario48true/nvrpc/rpc/transport/stdio"
	"github.com/Dario48true/nvrpc/rpc/transport/tcp"
	"github.com/Dario48true/nvrpc/rpc/transport/unix"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupRPCClientFlags adds common RPC connection flags to a command
func SetupRPCClientFlags(cmd *cobra.Command) {
	key := "endpoint"
	cmd.PersistentFlags().String(key, "localhost:6666", WrapString("The address of the RPC peer. Format depends on the transport: host:port for tcp, a socket path for unix, a read-fd:write-fd pair (or empty for stdin/stdout) for stdio"))

	key = "poll-interval"
	cmd.PersistentFlags().Int(key, common.DefaultPollIntervalMs, WrapString("The reader poll interval in milliseconds"))

	key = "max-workers"
	cmd.PersistentFlags().Int(key, common.DefaultMaxWorkers, WrapString("Maximum number of concurrently dispatched inbound handlers"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "warning", WrapString("Log level (debug, info, warning, error)"))

	key = "metrics"
	cmd.PersistentFlags().Bool(key, false, WrapString("Print client metrics in Prometheus format before exiting"))

	key = "transport-write-buffer"
	cmd.PersistentFlags().Int(key, 64, WrapString("The size of the write buffer for the transport (in KB)"))

	key = "transport-read-buffer"
	cmd.PersistentFlags().Int(key, 64, WrapString("The size of the read buffer for the transport (in KB)"))

	key = "transport-tcp-nodelay"
	cmd.PersistentFlags().Bool(key, true, WrapString("Whether to enable TCP_NODELAY for the transport (only for tcp)"))

	key = "transport-tcp-keepalive"
	cmd.PersistentFlags().Int(key, 0, WrapString("The keepalive interval for the transport (in seconds, only for tcp)"))

	key = "transport-tcp-linger"
	cmd.PersistentFlags().Int(key, 0, WrapString("The linger time for the transport (in seconds, only for tcp)"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("nvrpc")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetClientConfig reads client configuration from viper
func GetClientConfig() *common.ClientConfig {
	conf := &common.ClientConfig{
		PollIntervalMs: viper.GetInt("poll-interval"),
		MaxWorkers:     viper.GetInt("max-workers"),
		LogLevel:       viper.GetString("log-level"),
		Transport: common.ClientTransportConfig{
			Endpoint: viper.GetString("endpoint"),
			SocketConf: common.SocketConf{
				WriteBufferSize: viper.GetInt("transport-write-buffer") * 1024,
				ReadBufferSize:  viper.GetInt("transport-read-buffer") * 1024,
			},
			TCPConf: common.TCPConf{
				TCPKeepAliveSec: viper.GetInt("transport-tcp-keepalive"),
				TCPLingerSec:    viper.GetInt("transport-tcp-linger"),
				TCPNoDelay:      viper.GetBool("transport-tcp-nodelay"),
			},
		},
	}

	return conf
}

// GetCodec creates a frame codec based on configuration
func GetCodec() (codec.IFrameCodec, error) {
	switch viper.GetString("codec") {
	case "msgpack":
		return codec.NewMsgpackCodec(), nil
	case "json":
		return codec.NewJSONCodec(), nil
	default:
		return nil, fmt.Errorf("invalid codec %s", viper.GetString("codec"))
	}
}

// GetTransport creates transport based on configuration
func GetTransport() (transport.IRPCClientTransport, error) {
	switch viper.GetString("transport") {
	case "tcp":
		return tcp.NewTCPClientTransport(), nil
	case "unix":
		return unix.NewUnixClientTransport(), nil
	case "stdio":
		return stdio.NewStdioClientTransport(), nil
	default:
		return nil, fmt.Errorf("invalid transport %s", viper.GetString("transport"))
	}
}

// ParseParams converts positional arguments into RPC parameters. Each
// argument is decoded as JSON; an argument that is not valid JSON is passed
// through as a plain string, so `nvrpc call nvim_command ":echo 1"` works
// without quoting gymnastics.
func ParseParams(args []string) []interface{} {
	params := make([]interface{}, 0, len(args))
	for _, arg := range args {
		var v interface{}
		if err := json.Unmarshal([]byte(arg), &v); err != nil {
			params = append(params, arg)
			continue
		}
		params = append(params, v)
	}
	return params
}

// FormatResult renders an RPC result value as JSON for terminal output
func FormatResult(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// MetricsRequested reports whether the metrics dump flag is set
func MetricsRequested() bool {
	return viper.GetBool("metrics")
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.InheritedFlags())
}
