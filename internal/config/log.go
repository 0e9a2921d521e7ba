package config

import "os"

// Log configures the optional rotating log file.
type Log struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func NewLog() (*Log, error) {
	maxSize, err := lookupInt("LOG_MAX_SIZE_MB", 50)
	if err != nil {
		return nil, err
	}
	maxBackups, err := lookupInt("LOG_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}
	maxAge, err := lookupInt("LOG_MAX_AGE_DAYS", 28)
	if err != nil {
		return nil, err
	}
	return &Log{
		File:       os.Getenv("LOG_FILE"),
		MaxSizeMB:  maxSize,
		MaxBackups: maxBackups,
		MaxAgeDays: maxAge,
	}, nil
}
