// Package middleware holds ready-made reactor middleware: a Logger that logs
// every event, Stats that counts events per kind and Only that narrows another
// middleware to a set of event kinds.
package middleware
