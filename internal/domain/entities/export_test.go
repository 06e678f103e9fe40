package entities

// ExpandEnv exports expandEnv for testing.
var ExpandEnv = expandEnv //nolint:gochecknoglobals // test export

// HelperUsername exports helperUsername for testing.
var HelperUsername = helperUsername //nolint:gochecknoglobals // test export
