// Package csvfile reads museum object records from a CSV export such as the
// Metropolitan Museum of Art's MetObjects.csv.
//
// The first row is the header; each following row becomes a domain.Record
// keyed by header name. A leading UTF-8 byte order mark is ignored.
package csvfile
