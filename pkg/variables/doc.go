// Package variables turns placeholders found in a template and values given
// by the user into the binding used for substitution.
//
// A generation run goes through three steps here: Discovery scans every
// text of the template and settles the variable names, ParseAssignments
// reads the -v key=value arguments, and Resolve merges both, prompting for
// what is missing when a Prompter is available.
package variables
