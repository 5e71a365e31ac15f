package models

type Route struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

var DefaultRoute = Route{Origin: "VVO", Destination: "TLV"}

// WithOverrides returns a copy of r with any non-empty argument applied.
func (r Route) WithOverrides(origin, destination string) Route {
	if origin != "" {
		r.Origin = origin
	}
	if destination != "" {
		r.Destination = destination
	}
	return r
}

func (r Route) Validate() error {
	if r.Origin == "" {
		return ErrMissingOrigin
	}
	if r.Destination == "" {
		return ErrMissingDestination
	}
	return nil
}

func (r Route) String() string {
	return r.Origin + "-" + r.Destination
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin      ValidationError = "origin is required"
	ErrMissingDestination ValidationError = "destination is required"
)
