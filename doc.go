// Package cargostage collects the executables of a cargo build into a CI
// staging workspace. It runs 'cargo build --all-targets
// --message-format=json', reads the message stream line by line and copies
// every compiler artifact that names an executable to
//
//	{root}/{bins|tests}/{package}/{target}
//
// where the test profile flag decides between bins and tests. The leading
// token of cargo's package id is the package name, the rest (version,
// source location) is dropped.
//
// A failing build stages nothing. Decode and filesystem errors abort the
// run, there are no retries and no partial-success reporting.
//
// The tool itself neither builds software nor manages dependencies or
// caches; it is the thin staging step between cargo and a CI workspace
// consumer.
package cargostage
