// Package paths provides the locations scaffer uses outside of templates.
//
// Locations follow the XDG Base Directory specification through
// github.com/adrg/xdg:
//
//   - Global config: ~/.scaffer.json (SCAFFER_GLOBAL_CONFIG overrides it)
//   - Cache: $XDG_CACHE_HOME/scaffer, holding fetched templates under
//     templates/ (SCAFFER_CACHE_DIR overrides it)
//   - State: $XDG_STATE_HOME/scaffer, holding scaffer.log
//     (SCAFFER_STATE_DIR overrides it)
//
// Paths are resolved once and passed down, so the generator and the config
// loader never read the environment themselves.
package paths
