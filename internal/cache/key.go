package cache

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/rpgo/surplus-calculator/internal/domain"
)

// KeyPrefix namespaces comparison entries in shared stores
const KeyPrefix = "surplus:compare:"

// Key derives a cache key from the content of a configuration.
// Struct fields encode in declaration order, so equal configurations hash equally.
func Key(cfg *domain.Configuration) (string, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode configuration: %w", err)
	}
	return fmt.Sprintf("%s%016x", KeyPrefix, xxhash.Sum64(b)), nil
}
