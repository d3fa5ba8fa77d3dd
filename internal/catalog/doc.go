// Package catalog fetches and parses the remotely published skills manifest.
// The manifest is a gitmodules-style document: repeated [submodule "name"]
// blocks each carrying a url (and usually a path) key. A Client fetches the
// document at most once per process and memoizes the parsed result; every
// catalog-dependent operation in one invocation sees the same snapshot.
package catalog
