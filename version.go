package main

// _version is the version of prelight.
// This is overwritten at release time.
var _version = "dev"
