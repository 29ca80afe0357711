package domain

const (
	ContainerNormal      = "normal"
	ContainerMedium      = "medium"
	ContainerCritical    = "critical"
	ContainerOverflowing = "overflowing"

	TruckEmpty      = "empty"
	TruckCollecting = "collecting"
	TruckHalfFull   = "half_full"
	TruckFull       = "full"
)

func ContainerStatus(fill, capacity int) string {
	if capacity <= 0 {
		return ContainerNormal
	}

	switch {
	case fill >= capacity:
		return ContainerOverflowing
	case float64(fill) >= 0.9*float64(capacity):
		return ContainerCritical
	case float64(fill) >= 0.7*float64(capacity):
		return ContainerMedium
	default:
		return ContainerNormal
	}
}

func TruckStatus(carrying, capacity int) string {
	if carrying <= 0 {
		return TruckEmpty
	}
	if capacity <= 0 {
		return TruckCollecting
	}

	percent := float64(carrying) / float64(capacity) * 100
	switch {
	case percent >= 90:
		return TruckFull
	case percent >= 50:
		return TruckHalfFull
	default:
		return TruckCollecting
	}
}
