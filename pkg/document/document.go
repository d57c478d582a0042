// Package document provides read-only access to parsed source documents
// and the text extraction primitives every converter shares: path lookup,
// language preference, first-non-empty selection and label-by-reference.
//
// JSON-LD trees and XML trees are exposed through the same Node interface,
// so extraction rules are written once.
package document

import (
	"strings"
)

// Node is one element of a parsed document.
//
// Get evaluates a relative path and returns the matches in document order.
// For JSON nodes the path is a "/"-separated list of keys, and arrays met
// along the way are flattened. For XML nodes the path is an XPath
// expression evaluated with the document's namespace prefixes.
type Node interface {
	Get(path string) []Node
	// Value is the trimmed text of the node.
	Value() string
	// Attr returns the trimmed value of the named attribute or member, or "".
	Attr(name string) string
	// Lang is the node's language tag, or "" when untagged.
	Lang() string
}

// First returns the first match of path under n, or nil.
func First(n Node, path string) Node {
	if n == nil {
		return nil
	}
	if found := n.Get(path); len(found) > 0 {
		return found[0]
	}
	return nil
}

// All returns every match of path under n. A nil node has no matches.
func All(n Node, path string) []Node {
	if n == nil {
		return nil
	}
	return n.Get(path)
}

// Attr returns the attribute of a possibly nil node.
func Attr(n Node, name string) string {
	if n == nil {
		return ""
	}
	return n.Attr(name)
}

// Value returns the text of a possibly nil node.
func Value(n Node) string {
	if n == nil {
		return ""
	}
	return n.Value()
}

// Text selects one value among the matches of path under n using Pick.
func Text(n Node, path string, langs ...string) string {
	return Pick(All(n, path), langs...)
}

// Pick applies the language preference rule to candidates. For each
// preferred language in order, the first candidate tagged with it whose
// text is non-blank wins. Otherwise the first candidate is used, and if
// its text is blank the value is absent.
func Pick(candidates []Node, langs ...string) string {
	if len(candidates) == 0 {
		return ""
	}
	for _, want := range langs {
		for _, c := range candidates {
			if !SameLanguage(c.Lang(), want) {
				continue
			}
			if v := c.Value(); v != "" {
				return v
			}
		}
	}
	return candidates[0].Value()
}

// Texts returns the non-blank values of every match of path, in order.
func Texts(n Node, path string) []string {
	var out []string
	for _, c := range All(n, path) {
		if v := c.Value(); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// FirstNonEmpty returns the first of values that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// LabelFor resolves a reference against a set of candidate nodes: the first
// candidate whose idAttr equals ref provides its label from labelPath, with
// the given language preference. The value is absent when no candidate
// matches or the matching one has no label.
func LabelFor(candidates []Node, idAttr, ref, labelPath string, langs ...string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	for _, c := range candidates {
		if c.Attr(idAttr) == ref {
			return Text(c, labelPath, langs...)
		}
	}
	return ""
}

// JoinLabels joins concept labels with " | ". Blank labels are skipped and
// duplicates are kept.
func JoinLabels(labels []string) string {
	return join(labels, " | ")
}

// JoinList joins a simple list of terms with ", ".
func JoinList(values []string) string {
	return join(values, ", ")
}

func join(values []string, sep string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, sep)
}
