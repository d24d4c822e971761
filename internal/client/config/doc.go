// Package config loads runtime configuration for the tribunal portal and CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. TRIBUNAL_* environment variables.
//  4. Command-line flags, which override everything else.
//
// # JSON schema
//
// Durations accept "3s"-style strings or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "http_timeout": "30s",
//	  "database_path": "tribunal.db",
//	  "listen_addr": "127.0.0.1:8080",
//	  "download_dir": "downloads",
//	  "page_size": 10,
//	  "online_check_interval": "3s",
//	  "log_format": "text",
//	  "log_level": "info",
//	  "debug": false
//	}
//
// # Environment
//
//	TRIBUNAL_API_URL, TRIBUNAL_HTTP_TIMEOUT, TRIBUNAL_DB_PATH,
//	TRIBUNAL_LISTEN_ADDR, TRIBUNAL_DOWNLOAD_DIR, TRIBUNAL_PAGE_SIZE,
//	TRIBUNAL_ONLINE_CHECK_INTERVAL, TRIBUNAL_LOG_FORMAT, TRIBUNAL_LOG_LEVEL,
//	TRIBUNAL_DEBUG
package config
