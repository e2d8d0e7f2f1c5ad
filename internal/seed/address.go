package seed

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ChecksumAddress validates a hex address and returns its EIP-55 form.
func ChecksumAddress(input string) (string, error) {
	input = strings.TrimSpace(input)
	if !common.IsHexAddress(input) {
		return "", fmt.Errorf("invalid address: %q", input)
	}
	return common.HexToAddress(input).Hex(), nil
}
