package main

// _version is the version of zigdoc.
// It is overridden at release time.
var _version = "dev"
