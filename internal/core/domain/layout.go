package domain

import "path/filepath"

const (
	// TaxaDirName is the name of the internal workspace directory.
	TaxaDirName = ".taxa"

	// ConfigFileName is the name of the picker configuration file.
	ConfigFileName = "taxa.yaml"

	// DebugLogFile is the name of the debug log file.
	DebugLogFile = "debug.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the permission for files only the user may read (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultTaxaPath returns the default root directory for taxa metadata.
func DefaultTaxaPath() string {
	return TaxaDirName
}

// DefaultDebugLogPath returns the default path for the debug log.
// It joins .taxa and debug.log.
func DefaultDebugLogPath() string {
	return filepath.Join(TaxaDirName, DebugLogFile)
}
