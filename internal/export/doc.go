// Package export turns a batch into the CSV artifact consumed by the
// downstream weighing template and hands it to a share target.
package export
