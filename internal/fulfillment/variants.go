package fulfillment

import (
	"fmt"
	"strings"
)

// VariantMap resolves catalog design ids to the fulfillment partner's
// variant codes. The mapping is configuration: the catalog does not know how
// the partner names its products.
type VariantMap map[string]string

// ParseVariantMap reads a mapping from its environment encoding:
// "design-id=VARIANT,design-id=VARIANT".
func ParseVariantMap(raw string) (VariantMap, error) {
	vm := VariantMap{}
	if raw == "" {
		return vm, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid variant mapping entry %q", pair)
		}
		vm[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return vm, nil
}

// Resolve returns the variant code for a design id.
func (vm VariantMap) Resolve(designID string) (string, bool) {
	code, ok := vm[designID]
	return code, ok
}
