// Package gcloudhandler provides a chronolog handler backed by Google
// Cloud Logging.
//
// The package is deliberately separate from handler so that builds
// which never enable cloud logging do not link the cloud client
// library. An application opts in by importing this package and
// passing Factory to the logger registry; requesting cloud logging on
// a registry without a factory is a construction error there.
package gcloudhandler
