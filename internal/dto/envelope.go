package dto

// Envelope is the uniform wrapper every query endpoint responds with.
// Exactly one of Data and Error is meaningfully populated; Count is set
// only on paged list responses and holds the total number of matching
// rows, not the page length.
type Envelope[T any] struct {
	Data  T       `json:"data"`
	Error *string `json:"error"`
	Count *int64  `json:"count,omitempty"`
}

// OK wraps a successful result.
func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Data: data}
}

// Paged wraps one page of a list result together with the total match count.
func Paged[T any](data T, count int64) Envelope[T] {
	return Envelope[T]{Data: data, Count: &count}
}

// Fail wraps a user-displayable error. Data serializes as null.
func Fail(msg string) Envelope[any] {
	return Envelope[any]{Error: &msg}
}

// FailPaged is Fail for paged endpoints: the count is present and zero.
func FailPaged(msg string) Envelope[any] {
	var zero int64
	return Envelope[any]{Error: &msg, Count: &zero}
}
