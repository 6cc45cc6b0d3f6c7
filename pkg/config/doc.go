// Package config loads failure-kind taxonomies from TOML or YAML files and
// applies them to a registry.
//
// A taxonomy file lists kinds with an optional parent name:
//
//	strict = true
//
//	[[kinds]]
//	name = "IOError"
//
//	[[kinds]]
//	name = "ReadError"
//	parent = "IOError"
//
// Files are read with koanf. Settings can be overridden from the environment
// with the ATTEMPT_ prefix (ATTEMPT_STRICT=true). Parents may refer to kinds
// declared later in the same file, to kinds already in the registry, or to
// host kinds such as "NotExist".
package config
