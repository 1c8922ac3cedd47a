package solana

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// ParseInstructionData decodes textual instruction data as produced by the
// codec or supplied by a user. Hex is tried first (with or without a 0x
// prefix), then standard base64.
func ParseInstructionData(s string) ([]byte, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return nil, fmt.Errorf("empty instruction data")
	}

	hexText := strings.TrimPrefix(text, "0x")
	if raw, err := hex.DecodeString(hexText); err == nil {
		return raw, nil
	}

	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("instruction data is neither hex nor base64: %w", err)
	}

	return raw, nil
}

// FormatInstructionData renders an encoded instruction payload in both
// textual forms the transaction-building layer accepts.
func FormatInstructionData(raw []byte) (hexText, base64Text string) {
	return hex.EncodeToString(raw), base64.StdEncoding.EncodeToString(raw)
}
