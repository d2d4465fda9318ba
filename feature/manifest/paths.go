package manifest

import (
	"path/filepath"

	"modlist-builder/core/modlist"

	"github.com/adrg/xdg"
)

// FileName is the manifest file written by both launchers.
const FileName = "Steam.json"

// PathFor returns the manifest location for a family. An explicit
// Config.Path wins; otherwise the path is
// {data dir}/{launcher dir}/Steam.json, where the data dir defaults to the
// platform local data directory (%LOCALAPPDATA% on Windows).
func (c Config) PathFor(family modlist.Family) (string, error) {
	if c.Path != "" {
		return c.Path, nil
	}
	if !family.IsValid() {
		return "", modlist.ErrUnknownFamily
	}

	dataDir := c.DataDir
	if dataDir == "" {
		dataDir = xdg.DataHome
	}

	return filepath.Join(dataDir, family.ManifestDir(), FileName), nil
}
