// Package config loads the optional flowgraph settings file.
//
// The file is HCL. Every attribute is optional and the process environment
// is available as the `env` map, so a file can defer to variables:
//
//	log_level  = env.FLOWGRAPH_LOG_LEVEL
//	log_format = "json"
//	max_depth  = 256
//
//	output {
//	  format = "dot"
//	  color  = true
//	  width  = 100
//	}
//
// Values from the file override Default(); command-line flags override the
// file.
package config
