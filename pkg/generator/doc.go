// Package generator materializes a template into a destination directory.
//
// A run moves through fixed phases:
//
//	scanning   read the template tree, record placeholders in names and text
//	resolving  settle variable names, merge -v values, prompt for the rest
//	rendering  substitute every path segment and every text content
//	writing    create directories and write files, one atomic write each
//
// Nothing in the destination is touched before writing starts, so a missing
// variable or an unreadable template leaves no trace. During writing an
// existing file is a conflict unless Force is set (or its content is already
// what would be written), and failures are collected per entry instead of
// stopping the run. Binary files are copied byte for byte; only their names
// are substituted.
package generator
