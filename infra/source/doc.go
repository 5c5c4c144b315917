// Package source implements dataset.Source over HTTP(S) and the local file
// system. Resources are decoded as CSV unless their path ends in .xlsx, in
// which case the first sheet of the workbook is read.
package source
