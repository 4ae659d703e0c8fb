package kgsearch

import "fmt"

type ErrConflictingParameters struct{}

func (e ErrConflictingParameters) Error() string {
	return "parameters 'keyword' and 'ids' are mutually exclusive, only one may be set"
}

type ErrInvalidParameter struct {
	Name   string
	Reason string
}

func (e ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter '%s': %s", e.Name, e.Reason)
}

// ErrAPI is returned for any non-200 response from the search endpoint.
type ErrAPI struct {
	StatusCode int
	Code       int
	Message    string
	Status     string
}

func (e ErrAPI) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("(API Error %d %s) %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("(API Error %d) %s", e.Code, e.Message)
}
