// Package core defines the shared types used across chronolog.
//
// It provides the Level type for severity filtering, the Entry type
// that represents a single log record, and the Field type for compact
// key-value pairs carried by records that flow into structured sinks.
//
// The level set mirrors the façade's call surface: DEBUG, INFO,
// WARNING, ERROR and CRITICAL. InfoLevel is the zero value, so a
// configuration struct that never sets a level filters at INFO.
//
// Entry objects are pooled via sync.Pool to keep the emit path
// allocation-free. Callers get an Entry with GetEntry and return it
// with PutEntry once the handler has consumed it; all chronolog
// handlers are synchronous, so an Entry never outlives the Handle
// call that received it.
package core
