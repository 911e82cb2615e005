package assets

import "fmt"

// FetchError reports that an asset's bytes could not be retrieved from
// the asset root.
type FetchError struct {
	ID  string
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %v", e.ID, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports that fetched bytes could not be decoded into a
// usable resource.
type DecodeError struct {
	ID  string
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s (%s): %v", e.ID, e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
