package utils

// Map returns a new slice with mapper applied to each element of sli.
//
// The result is never nil, even when sli is nil.
func Map[T any, R any](sli []T, mapper func(v T) R) []R {
	ret := make([]R, len(sli))
	for nth, v := range sli {
		ret[nth] = mapper(v)
	}
	return ret
}
