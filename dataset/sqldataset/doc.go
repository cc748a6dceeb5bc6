/*
Package sqldataset provides a dataset.Reader and dataset.Writer
that use an SQL database as backend.

The samples are stored on a single samples table, with one boolean
column per feature, one for the label and an autoincremented id
column keeping the order in which they were written.
*/
package sqldataset
