package bip38

import (
	"github.com/qtumproject/go-bip38/internal/netparams"
	bip38err "github.com/qtumproject/go-bip38/pkg/errors"
)

// Network selects the Qtum network whose version bytes are used for
// address and WIF encoding.
type Network uint8

const (
	// MainNet is the Qtum main network.
	MainNet Network = iota

	// TestNet is the Qtum test network.
	TestNet
)

// String returns the canonical network name.
func (n Network) String() string {
	switch n {
	case MainNet:
		return netparams.MainNetParams.Name
	case TestNet:
		return netparams.TestNetParams.Name
	default:
		return "unknown"
	}
}

// params resolves the version-byte table for the network.
func (n Network) params() (*netparams.Params, error) {
	switch n {
	case MainNet:
		return &netparams.MainNetParams, nil
	case TestNet:
		return &netparams.TestNetParams, nil
	default:
		return nil, bip38err.New("UNKNOWN_NETWORK", "unknown network")
	}
}
