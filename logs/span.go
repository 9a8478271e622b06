package logs

type Span string

type spanKeyType struct{}

var SpanKey = spanKeyType{}
