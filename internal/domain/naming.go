package domain

import "path/filepath"

// Directory and file names for tasklist.
const (
	AppDirName     = "tasklist"    // Directory name under XDG config/data homes
	ConfigFileName = "config.toml" // Config file name
	LogsDirName    = "logs"        // Directory for log files
	LogFileName    = "tasklist.log"
	SQLiteFileName = "tasklist.db"
)

// AppDir returns the tasklist directory under an XDG base directory.
// base is typically XDG_CONFIG_HOME or XDG_DATA_HOME (resolved by caller).
func AppDir(base string) string {
	return filepath.Join(base, AppDirName)
}

// ConfigPath returns the config file path inside dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

// LogPath returns the path to the log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, LogsDirName, LogFileName)
}

// SlotFilePath returns the path of the JSON file backing the named slot.
func SlotFilePath(dataDir, key string) string {
	return filepath.Join(dataDir, key+".json")
}

// SQLitePath returns the path of the SQLite database holding slots.
func SQLitePath(dataDir string) string {
	return filepath.Join(dataDir, SQLiteFileName)
}
