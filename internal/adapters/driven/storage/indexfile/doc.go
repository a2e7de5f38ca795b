// Package indexfile persists the artist URL index as a JSON or YAML document.
//
// The format follows the file extension: ".yaml" and ".yml" select YAML,
// anything else JSON. Both keep artists in index order.
package indexfile
