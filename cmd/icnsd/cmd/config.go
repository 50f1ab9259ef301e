package cmd

import (
	"time"

	cmtcfg "github.com/cometbft/cometbft/config"
	serverconfig "github.com/cosmos/cosmos-sdk/server/config"
	cosmosevmserverconfig "github.com/cosmos/evm/server/config"

	"github.com/icnx-xyz/icns/app"
)

// initCometBFTConfig helps to override default CometBFT Config values.
// return cmtcfg.DefaultConfig if no custom configuration is required for the application.
func initCometBFTConfig() *cmtcfg.Config {
	cfg := cmtcfg.DefaultConfig()

	// name lookups are read-heavy; keep the mempool small and blocks quick
	cfg.Mempool.Size = 2000
	cfg.Consensus.TimeoutCommit = 2 * time.Second

	return cfg
}

// EVMAppConfig extends the default SDK config with EVM-specific settings
type EVMAppConfig struct {
	serverconfig.Config `mapstructure:",squash"`

	EVM     cosmosevmserverconfig.EVMConfig     `mapstructure:"evm"`
	JSONRPC cosmosevmserverconfig.JSONRPCConfig `mapstructure:"json-rpc"`
	TLS     cosmosevmserverconfig.TLSConfig     `mapstructure:"tls"`
}

// initAppConfig helps to override default appConfig template and configs.
// return "", nil if no custom configuration is required for the application.
func initAppConfig() (string, interface{}) {
	// Optionally allow the chain developer to overwrite the SDK's default
	// server config.
	srvCfg := serverconfig.DefaultConfig()

	// Zero minimum gas prices for development; validators override this
	srvCfg.MinGasPrices = "0" + app.BondDenom

	// EVM configuration
	evmCfg := cosmosevmserverconfig.DefaultEVMConfig()
	evmCfg.EVMChainID = app.DefaultEVMChainID

	// JSON-RPC configuration
	jsonrpcCfg := cosmosevmserverconfig.DefaultJSONRPCConfig()
	jsonrpcCfg.Enable = true
	jsonrpcCfg.Address = "0.0.0.0:8545"
	jsonrpcCfg.API = []string{"eth", "net", "web3", "txpool", "debug"}

	// TLS configuration (disabled for local development)
	tlsCfg := cosmosevmserverconfig.DefaultTLSConfig()

	customAppConfig := EVMAppConfig{
		Config:  *srvCfg,
		EVM:     *evmCfg,
		JSONRPC: *jsonrpcCfg,
		TLS:     *tlsCfg,
	}

	// Extend the default template with EVM sections
	customAppTemplate := serverconfig.DefaultConfigTemplate + cosmosevmserverconfig.DefaultEVMConfigTemplate

	return customAppTemplate, customAppConfig
}
