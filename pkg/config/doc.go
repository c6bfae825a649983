// Package config finds and reads scaffer configuration.
//
// Two files are involved. The local config is the first of scaffer.json,
// scaffer.toml or package.json (under its "scaffer" key) found in the
// working directory or one of its parents. The global config lives at
// ~/.scaffer.json unless SCAFFER_GLOBAL_CONFIG points elsewhere. Both have
// the same shape:
//
//	{
//	  "scaffer": ["templates", "~/shared/templates"],
//	  "scaffer_template_urls": {"api": "https://example.com/api.zip"},
//	  "scaffer_prefix": "scf"
//	}
//
// Relative template directories are resolved against the directory of the
// file that lists them. SCAFFER_TEMPLATES adds more directories, separated
// like PATH.
//
// Files are read with koanf; JSON and TOML are both accepted wherever a
// config file is expected.
package config
