// Package config loads runtime configuration for the staffkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   local storage file (":memory:" keeps nothing on exit)
//	-k string   key of the data blob inside local storage
//	-q int      local storage quota in bytes
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "storage_path": "staffkeeper.db",
//	  "storage_key": "ipt_demo_v1",
//	  "storage_quota": 5242880,
//	  "log_level": "warn"
//	}
//
// Keys missing from the file keep their earlier value.
package config
