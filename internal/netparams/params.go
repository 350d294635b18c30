// Package netparams defines the Qtum network version bytes used by
// address and WIF encoding. The tables are compile-time constants and
// never mutated at runtime.
package netparams

// Params holds the version bytes for one Qtum network.
type Params struct {
	// Name is the canonical network name.
	Name string

	// P2PKHVersion is the version byte prepended to HASH160(pubkey)
	// when building a pay-to-pubkey-hash address.
	P2PKHVersion byte

	// WIFVersion is the version byte prepended to a private key in
	// wallet import format.
	WIFVersion byte
}

// MainNetParams are the version bytes for the Qtum main network.
//
//nolint:gochecknoglobals // Network constants, never mutated
var MainNetParams = Params{
	Name:         "mainnet",
	P2PKHVersion: 0x3A,
	WIFVersion:   0x80,
}

// TestNetParams are the version bytes for the Qtum test network.
//
//nolint:gochecknoglobals // Network constants, never mutated
var TestNetParams = Params{
	Name:         "testnet",
	P2PKHVersion: 0x78,
	WIFVersion:   0xEF,
}
