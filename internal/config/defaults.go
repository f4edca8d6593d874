// ABOUTME: Centralized configuration defaults for feedparse
// ABOUTME: Contains extraction defaults plus display and file settings

package config

import (
	"time"

	"github.com/harper/feedparse/internal/timeutil"
)

// Extraction defaults
const (
	DefaultLanguage     = "en"
	DefaultDateTemplate = timeutil.DefaultTemplate
	DefaultWorkers      = 1
	DefaultLogLevel     = "info"
)

// HTTP settings
const (
	DefaultHTTPTimeout = 30 * time.Second
)

// Display settings
const (
	SeparatorWidth  = 60
	SummaryTitleMax = 72
	DateFormatLong  = "Mon, 02 Jan 2006 15:04 MST"
)

// File settings
const (
	DefaultDirPerms  = 0755
	DefaultFilePerms = 0644
)
