package modlist

import "strings"

// Family identifies the product line a preset was exported from.
type Family string

const (
	// FamilyArma is the Arma 3 launcher.
	FamilyArma Family = "arma"
	// FamilyDayZ is the DayZ launcher.
	FamilyDayZ Family = "dayz"
)

// Families lists every supported family.
var Families = []Family{FamilyArma, FamilyDayZ}

// ParseFamily resolves a family name case-insensitively.
func ParseFamily(name string) (Family, error) {
	switch Family(strings.ToLower(strings.TrimSpace(name))) {
	case FamilyArma, "arma3":
		return FamilyArma, nil
	case FamilyDayZ:
		return FamilyDayZ, nil
	default:
		return "", ErrUnknownFamily
	}
}

// IsValid reports whether f is a supported family.
func (f Family) IsValid() bool {
	switch f {
	case FamilyArma, FamilyDayZ:
		return true
	default:
		return false
	}
}

// ManifestDir returns the launcher directory, relative to the local data
// directory, that holds the family's manifest.
func (f Family) ManifestDir() string {
	switch f {
	case FamilyArma:
		return "Arma 3 Launcher"
	case FamilyDayZ:
		return "DayZ Launcher"
	default:
		return ""
	}
}

// DisplayName returns the product name.
func (f Family) DisplayName() string {
	switch f {
	case FamilyArma:
		return "Arma 3"
	case FamilyDayZ:
		return "DayZ"
	default:
		return string(f)
	}
}
