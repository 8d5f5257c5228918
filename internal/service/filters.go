package service

import "time"

// HistoryFilter narrows a history listing.
type HistoryFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Limit int       // 0 means DefaultHistoryLimit
}

const (
	DefaultHistoryLimit = 100
	MaxHistoryLimit     = 1000
)
