// Package config loads runtime configuration for the scanbatch CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory
//	-s string   storage driver: sqlite or file
//	-e string   export directory
//	-r int      pause after an accepted scan (milliseconds)
//	-t string   share target: local, s3 or http
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "800ms" or
// integer nanoseconds:
//
//	{
//	  "storage_driver": "sqlite",
//	  "data_dir": "data",
//	  "export_dir": "exports",
//	  "resume_delay": "800ms",
//	  "timezone": "Asia/Jakarta",
//	  "csv_delimiter": ";",
//	  "csv_header_delimiter": ",",
//	  "log_level": "info",
//	  "share_target": "s3",
//	  "s3_bucket": "exports",
//	  "s3_endpoint": "http://127.0.0.1:9000",
//	  "s3_link_ttl": "24h"
//	}
//
// Keys missing from the file keep their previous value.
package config
