// Package placeholder finds placeholders in text.
//
// A placeholder is the prefix followed by a variable name written in one of
// the casing patterns of package casing, e.g. ScfProjectName or
// SCF_PROJECT_NAME. It is only recognized on word boundaries: the byte before
// the prefix and the byte after the placeholder must not be ASCII letters or
// digits, so "fooscfbar" and "scf_nameX" never match.
//
// Scan reports occurrences exactly as they appear. FindAll additionally
// resolves each occurrence against a Vocabulary of known names:
//
//   - separator styles (snake, kebab, dot) are narrowed to the longest known
//     name they start with, so with "project" known SCF_PROJECT_VERSION is
//     the placeholder SCF_PROJECT followed by the literal _VERSION;
//   - flat styles take the first known name whose words joined together are
//     the flat text, since scfmyproject carries no word boundaries.
package placeholder
