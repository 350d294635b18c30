package bip38

// IntermediateOptions control intermediate-passphrase construction.
// A nil options value means: random 8-byte owner salt, no lot/sequence.
type IntermediateOptions struct {
	// OwnerSalt is the 8-byte owner salt. Random when nil. When lot and
	// sequence are present only the first four bytes are used as owner
	// entropy; the last four are replaced by the packed lot/sequence.
	OwnerSalt []byte

	// Lot is the optional lot number, 0..1048575. Requires Sequence.
	Lot *uint32

	// Sequence is the sequence number, 0..4095. Required iff Lot is set.
	Sequence *uint32
}

// Details is the structured result of DecryptDetailed.
type Details struct {
	// WIF is the canonical wallet import format of the recovered key.
	WIF string `json:"wif"`

	// PrivateKey is the recovered 32-byte private key in hex.
	PrivateKey string `json:"private_key"`

	// Compressed reports whether the key's public key is compressed.
	Compressed bool `json:"compressed"`

	// PublicKey is the serialised public key in hex.
	PublicKey string `json:"public_key"`

	// Seed is the 24-byte EC-multiply seed in hex. Empty for tokens
	// encrypted in no-EC-multiply mode.
	Seed string `json:"seed,omitempty"`

	// Address is the base58 P2PKH address.
	Address string `json:"address"`

	// HexAddress is the EVM-format rendering of the same key.
	HexAddress string `json:"hex_address"`

	// Lot and Sequence are present when the token embeds them.
	Lot      *uint32 `json:"lot,omitempty"`
	Sequence *uint32 `json:"sequence,omitempty"`
}

// NewEncryptedWIF is the result of CreateNewEncryptedWIF.
type NewEncryptedWIF struct {
	// EncryptedWIF is the 6P... token holding the new key.
	EncryptedWIF string `json:"encrypted_wif"`

	// ConfirmationCode is the cfrm38... token for the passphrase holder.
	ConfirmationCode string `json:"confirmation_code"`

	// PublicKey is the serialised public key in hex.
	PublicKey string `json:"public_key"`

	// Seed is the 24-byte seed in hex.
	Seed string `json:"seed"`

	// Compressed reports the requested public-key serialisation.
	Compressed bool `json:"compressed"`

	// Address is the base58 P2PKH address of the new key.
	Address string `json:"address"`

	// HexAddress is the EVM-format rendering of the same key.
	HexAddress string `json:"hex_address"`
}

// Confirmation is the structured result of ConfirmCodeDetailed.
type Confirmation struct {
	// Address is the base58 P2PKH address the code commits to.
	Address string `json:"address"`

	// HexAddress is the EVM-format rendering of the same key.
	HexAddress string `json:"hex_address"`

	// PublicKey is the serialised public key in hex.
	PublicKey string `json:"public_key"`

	// Compressed reports the public-key serialisation in use.
	Compressed bool `json:"compressed"`

	// Lot and Sequence are present when the code embeds them.
	Lot      *uint32 `json:"lot,omitempty"`
	Sequence *uint32 `json:"sequence,omitempty"`
}
