// Package attrs defines telemetry attribute keys shared by the basicstats
// middlewares, so metrics and traces use the same key names.
package attrs

const (
	// AttrMethod is the service method being invoked.
	AttrMethod = "method"
	// AttrStatistic is the name of the statistic being computed.
	AttrStatistic = "statistic"
	// AttrSampleLength is the number of elements in the sample.
	AttrSampleLength = "sample.len"
	// AttrSampleDigest is the xxhash fingerprint of the sample.
	AttrSampleDigest = "sample.digest"
	// AttrDefined reports whether the statistic was defined for the sample.
	AttrDefined = "defined"
	// AttrStatisticsCount is the number of statistics produced by a summary.
	AttrStatisticsCount = "statistics.count"
)
