package ctdf

import (
	"fmt"
	"strings"
)

type TransportType string

const (
	TransportTypeRail      TransportType = "Rail"
	TransportTypeLightRail TransportType = "LightRail"
	TransportTypeBus       TransportType = "Bus"
)

// ParseTransportType accepts the canonical names as well as the older TRAIN/STRAIN/BUS spelling.
func ParseTransportType(s string) (TransportType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RAIL", "TRAIN":
		return TransportTypeRail, nil
	case "LIGHTRAIL", "LIGHT_RAIL", "STRAIN":
		return TransportTypeLightRail, nil
	case "BUS":
		return TransportTypeBus, nil
	default:
		return "", fmt.Errorf("%w: unknown transport type %q", ErrInvalidArgument, s)
	}
}
