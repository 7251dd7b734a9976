package randomuser_client

// Target identifies which deployment of the API a run is aimed at.
type Target string

const (
	// TargetLive is the public randomuser.me deployment
	TargetLive Target = "live"

	// TargetLocal is the in-process stand-in server
	TargetLocal Target = "local"
)

// TargetConfig describes a target.
type TargetConfig struct {
	Target      Target `json:"target"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Hermetic    bool   `json:"hermetic"` // no network egress
}

// GetTargets returns all known targets
func GetTargets() map[Target]TargetConfig {
	return map[Target]TargetConfig{
		TargetLive: {
			Target:      TargetLive,
			Name:        "randomuser.me",
			Description: "Public random user generator",
			Hermetic:    false,
		},
		TargetLocal: {
			Target:      TargetLocal,
			Name:        "Local stand-in",
			Description: "In-process server with randomuser-compatible responses",
			Hermetic:    true,
		},
	}
}

// ValidateTarget checks if the target is known
func ValidateTarget(target Target) bool {
	_, exists := GetTargets()[target]
	return exists
}
