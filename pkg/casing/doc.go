// Package casing converts variable names between the naming conventions
// scaffer recognises in templates.
//
// A variable is identified by a Name: an ordered list of lowercase words.
// The same Name can be written in nine Patterns, each made of a prefix form
// and a word style:
//
//	ScfMyVar      Pascal
//	scf-my-var    kebab        SCF-MY-VAR   upper kebab
//	scf.my.var    dot          SCF.MY.VAR   upper dot
//	scf_my_var    snake        SCF_MY_VAR   upper snake
//	scfmyvar      flat         SCFMYVAR     upper flat
//
// Decompose parses a complete placeholder and Render writes one back, so that
// Decompose(Render(n, p, prefix), prefix) returns n and p for every valid name.
// RenderValue writes a value in a pattern's word style without the prefix; it
// is what replaces a placeholder in generated output.
package casing
