package process

// MergeEnv exports mergeEnv for testing.
var MergeEnv = mergeEnv //nolint:gochecknoglobals // test export
