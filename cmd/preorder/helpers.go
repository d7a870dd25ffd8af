package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/slimcoreui/preorder-admin/internal/common"
	"github.com/slimcoreui/preorder-admin/internal/gateway"
)

// newGatewayClient builds the RPC client from configuration. The endpoint URL
// is the one piece of config with no usable default.
func newGatewayClient() (*gateway.Client, error) {
	url := viper.GetString("gateway.url")
	if url == "" {
		return nil, fmt.Errorf("%w: gateway.url (set it in the config file, PREORDER_GATEWAY_URL or --gateway-url)", common.ErrMissingConfig)
	}

	timeout := viper.GetDuration("gateway.timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return gateway.NewClient(url, timeout), nil
}
