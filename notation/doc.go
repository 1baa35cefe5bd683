// Package notation reads and writes complexes written as face-list literals:
//
//	[('Cow', 'Rabbit'), ('Cow', 'Horse'), {'Fish', 'Dolphin', 'Oyster'}]
//
// A face is a parenthesised or braced list of labels; labels are quoted
// strings (single or double quotes), bare identifiers or integers. Commas
// between faces and labels are optional separators and may trail. The outer
// brackets may be omitted. Lines starting with '#' are comments.
//
// The grammar is built with github.com/alecthomas/participle/v2.
package notation
