package cmd

import "github.com/vidsel/vidsel/where"

// location is a directory or file vidsel keeps on disk.
type location struct {
	flag  string
	short string
	about string
	path  func() string
	// clearable locations can be removed by clear without losing settings.
	clearable bool
}

var locations = []location{
	{flag: "config", short: "c", about: "settings and logs", path: where.Config},
	{flag: "logs", short: "l", about: "daily log files", path: where.Logs, clearable: true},
	{flag: "cache", short: "C", about: "release check cache", path: where.Cache, clearable: true},
	{flag: "queries", short: "q", about: "remembered video IDs", path: where.Queries, clearable: true},
	{flag: "temp", short: "t", about: "player sockets", path: where.Temp, clearable: true},
}
