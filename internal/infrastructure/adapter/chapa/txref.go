package chapa

import (
	"strings"

	"github.com/google/uuid"

	"github.com/khanut-app/backend/internal/domain/port/gateway"
)

const (
	defaultTxRefPrefix = "TX"
	defaultTxRefSize   = 15
	maxTxRefSize       = 32
)

// GenerateTxRef produces a unique transaction reference. The random part is
// a UUID stripped of dashes and truncated to the requested size.
func (c *Client) GenerateTxRef(opts gateway.TxRefOptions) string {
	size := opts.Size
	if size < 1 {
		size = defaultTxRefSize
	}
	if size > maxTxRefSize {
		size = maxTxRefSize
	}

	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if len(random) > size {
		random = random[:size]
	}

	if opts.RemovePrefix {
		return random
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = defaultTxRefPrefix
	}
	return prefix + "-" + random
}
