package config

import "time"

// app constants
const (
	Version = "1.0.0"

	DefaultConfigName = "books"
	EnvPrefix         = "BOOKS"
)

// server constants
const (
	DefaultPort     = 8574
	DefaultMode     = "release"
	ShutdownTimeout = 5 * time.Second
)

// storage constants
const (
	DefaultDataFile = "data/books.json"
)

// logging constants
const (
	DefaultLogDir    = "logs"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// activity constants
const (
	DefaultActivitySize = 50
	ActivityKey         = "books:activity"
)

// elastic constants
const (
	DefaultIndexName = "books"
)
