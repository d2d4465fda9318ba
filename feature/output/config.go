package output

// Config holds the artifact directory and file names.
type Config struct {
	// Dir is the directory artifacts are written to.
	Dir string `mapstructure:"dir" default:"."`
	// NameListFile receives the "@name;" payload.
	NameListFile string `mapstructure:"name_list" default:"name-list.txt"`
	// IDListFile receives the comma separated ids.
	IDListFile string `mapstructure:"id_list" default:"id-list.txt"`
	// ReportFile receives the unmatched entries, one per line.
	ReportFile string `mapstructure:"report" default:"unmatched.txt"`
}

func (c Config) withDefaults() Config {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.NameListFile == "" {
		c.NameListFile = "name-list.txt"
	}
	if c.IDListFile == "" {
		c.IDListFile = "id-list.txt"
	}
	if c.ReportFile == "" {
		c.ReportFile = "unmatched.txt"
	}
	return c
}
