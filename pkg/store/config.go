package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/lnds/daily-log/pkg/journal"
)

// Config says where the journal lives and how saves behave. It is
// passed around explicitly; nothing in the core reads ambient state.
type Config struct {
	DoingFile      string `json:"doing_file"`
	DefaultSection string `json:"default_section"`
	Backups        bool   `json:"backups"`
	BackupDir      string `json:"backup_dir"`
}

// LoadConfig resolves configuration from a .dailylog config file (in
// DAILYLOG_CONFIG, the working directory or the home directory) and
// DAILYLOG_* environment variables. DAILYLOG_FILE overrides the data
// file path directly.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("doing_file", "~/.daily-log.taskpaper")
	v.SetDefault("default_section", journal.Default)
	v.SetDefault("backups", true)
	v.SetDefault("backup_dir", "~/.daily-log/backups")
	v.SetConfigName(".dailylog") // .yaml is implicit
	v.SetEnvPrefix("DAILYLOG")
	v.AutomaticEnv()

	if override := os.Getenv("DAILYLOG_CONFIG"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cfg := &Config{
		DoingFile:      v.GetString("doing_file"),
		DefaultSection: v.GetString("default_section"),
		Backups:        v.GetBool("backups"),
		BackupDir:      v.GetString("backup_dir"),
	}
	if override := os.Getenv("DAILYLOG_FILE"); override != "" {
		cfg.DoingFile = override
	}
	if expanded, err := homedir.Expand(cfg.DoingFile); err == nil {
		cfg.DoingFile = expanded
	}
	if expanded, err := homedir.Expand(cfg.BackupDir); err == nil {
		cfg.BackupDir = expanded
	}
	return cfg, nil
}

// Section resolves the target section for new entries: an explicit
// choice wins, then the configured default, then Currently.
func (c *Config) Section(explicit string) string {
	if explicit != "" {
		return journal.Normalize(explicit)
	}
	if c != nil && c.DefaultSection != "" {
		return journal.Normalize(c.DefaultSection)
	}
	return journal.Default
}
