package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"modlist-builder/core/modlist"
)

const steamIDPrefix = "steam:"

// manifestRepr mirrors the launcher's Steam.json.
type manifestRepr struct {
	Extensions *[]extensionRepr `json:"Extensions"`
}

// Every field is required; pointers tell a missing or null field apart
// from a zero value.
type extensionRepr struct {
	ID                steamID          `json:"Id"`
	DisplayName       *string          `json:"DisplayName"`
	ExtensionPath     *string          `json:"ExtensionPath"`
	StorageInfo       *storageInfoRepr `json:"StorageInfo"`
	SteamDependencies *[]uint64        `json:"SteamDependencies"`
}

type storageInfoRepr struct {
	FileSystemSize *uint64 `json:"FileSystemSize"`
}

// missingField returns the first required field absent from the extension.
func (e extensionRepr) missingField() string {
	switch {
	case !e.ID.set:
		return "Id"
	case e.DisplayName == nil:
		return "DisplayName"
	case e.ExtensionPath == nil:
		return "ExtensionPath"
	case e.StorageInfo == nil:
		return "StorageInfo"
	case e.StorageInfo.FileSystemSize == nil:
		return "StorageInfo.FileSystemSize"
	case e.SteamDependencies == nil:
		return "SteamDependencies"
	}
	return ""
}

// steamID decodes ids of the form "steam:<u64>".
type steamID struct {
	value uint64
	set   bool
}

func (s *steamID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid Id: expected a string prefixed with %q followed by a u64", steamIDPrefix)
	}

	digits, ok := strings.CutPrefix(raw, steamIDPrefix)
	if !ok {
		return fmt.Errorf("invalid Id %q: expected a string prefixed with %q followed by a u64", raw, steamIDPrefix)
	}

	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid Id %q: expected a string prefixed with %q followed by a u64", raw, steamIDPrefix)
	}

	s.value, s.set = value, true
	return nil
}

// Decode reads a Steam.json document and indexes its extensions by id.
// When an id appears twice the last record wins.
func Decode(r io.Reader) (map[uint64]modlist.InstalledItem, error) {
	var repr manifestRepr
	if err := json.NewDecoder(r).Decode(&repr); err != nil {
		return nil, parseError(err)
	}
	if repr.Extensions == nil {
		return nil, parseError(errors.New("missing field Extensions"))
	}

	items := make(map[uint64]modlist.InstalledItem, len(*repr.Extensions))
	for i, ext := range *repr.Extensions {
		if field := ext.missingField(); field != "" {
			return nil, parseError(fmt.Errorf("missing field %s in extension %d", field, i))
		}

		items[ext.ID.value] = modlist.InstalledItem{
			ID:            ext.ID.value,
			DisplayName:   *ext.DisplayName,
			Path:          *ext.ExtensionPath,
			ByteSize:      *ext.StorageInfo.FileSystemSize,
			DependencyIDs: *ext.SteamDependencies,
		}
	}

	return items, nil
}

func parseError(err error) error {
	return &modlist.ParseError{Source: modlist.SourceManifest, Reason: err}
}
