package model

// GlobalConfig represents the user's swatch configuration.
// Stored at <user-config>/swatch/config.toml.
type GlobalConfig struct {
	DataDir         string `toml:"data_dir,omitempty"`         // Custom data directory
	BackupRetention int    `toml:"backup_retention,omitempty"` // 0 = default
	HistoryDepth    int    `toml:"history_depth,omitempty"`    // 0 = default
}

// Default limits applied when the global config leaves them unset.
const (
	DefaultBackupRetention = 10
	DefaultHistoryDepth    = 50
)

// EffectiveBackupRetention returns the configured retention, or the
// default when unset or nonsensical.
func (g *GlobalConfig) EffectiveBackupRetention() int {
	if g == nil || g.BackupRetention <= 0 {
		return DefaultBackupRetention
	}
	return g.BackupRetention
}

// EffectiveHistoryDepth returns the configured undo depth, or the default
// when unset or nonsensical.
func (g *GlobalConfig) EffectiveHistoryDepth() int {
	if g == nil || g.HistoryDepth <= 0 {
		return DefaultHistoryDepth
	}
	return g.HistoryDepth
}
