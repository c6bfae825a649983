// Package fetch downloads remote templates into a local cache.
//
// Two kinds of URL are understood. Git remotes (git@host:repo, ssh://,
// git+https:// or anything ending in .git) are shallow-cloned with go-git.
// Everything else is fetched over HTTP with a retrying client and unpacked
// as a zip archive.
//
// Each URL gets its own directory under the cache, named after a hash of
// the URL. Fetching again replaces it. Archives often wrap the template in
// a single top-level directory, so after unpacking FindRoot picks the
// directory that actually looks like a template.
package fetch
