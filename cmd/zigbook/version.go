package main

// _version is the version of zigbook.
// It is overridden at release time.
var _version = "dev"
