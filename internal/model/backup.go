package model

// BackupMetadata describes one point-in-time backup file.
type BackupMetadata struct {
	TimestampMillis  int64  `json:"timestamp"`
	Version          string `json:"version"`
	ColorCount       int    `json:"colorCount"`
	OriginalFilePath string `json:"originalFilePath"`
}

// BackupFile is the on-disk shape of a backup: metadata plus the full
// collection as it was at backup time.
type BackupFile struct {
	Metadata BackupMetadata `json:"metadata"`
	Colors   []ColorRecord  `json:"colors"`
}
