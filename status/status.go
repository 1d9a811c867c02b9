// Package status represents HTTP-style response statuses, mirroring
// pleb's status.hpp (itself a thin wrapper over a standard
// reason-phrase table).
package status

import "fmt"

// Status is a three-digit HTTP-style status code.
type Status int

const (
	None Status = 0

	Continue           Status = 100
	SwitchingProtocols Status = 101
	Processing         Status = 102

	OK                          Status = 200
	Created                     Status = 201
	Accepted                    Status = 202
	NonAuthoritativeInformation Status = 203
	NoContent                   Status = 204
	ResetContent                Status = 205
	PartialContent              Status = 206

	MultipleChoices   Status = 300
	MovedPermanently  Status = 301
	Found             Status = 302
	SeeOther          Status = 303
	NotModified       Status = 304
	TemporaryRedirect Status = 307
	PermanentRedirect Status = 308

	BadRequest                  Status = 400
	Unauthorized                Status = 401
	PaymentRequired              Status = 402
	Forbidden                   Status = 403
	NotFound                    Status = 404
	MethodNotAllowed            Status = 405
	NotAcceptable                Status = 406
	RequestTimeout               Status = 408
	Conflict                     Status = 409
	Gone                         Status = 410
	LengthRequired               Status = 411
	PreconditionFailed           Status = 412
	PayloadTooLarge              Status = 413
	UnsupportedMediaType         Status = 415
	UnprocessableEntity          Status = 422
	TooManyRequests              Status = 429

	InternalServerError     Status = 500
	NotImplemented          Status = 501
	BadGateway              Status = 502
	ServiceUnavailable      Status = 503
	GatewayTimeout          Status = 504
)

var reasonPhrases = map[Status]string{
	Continue:           "Continue",
	SwitchingProtocols: "Switching Protocols",
	Processing:         "Processing",

	OK:                          "OK",
	Created:                     "Created",
	Accepted:                    "Accepted",
	NonAuthoritativeInformation: "Non-Authoritative Information",
	NoContent:                   "No Content",
	ResetContent:                "Reset Content",
	PartialContent:              "Partial Content",

	MultipleChoices:   "Multiple Choices",
	MovedPermanently:  "Moved Permanently",
	Found:             "Found",
	SeeOther:          "See Other",
	NotModified:       "Not Modified",
	TemporaryRedirect: "Temporary Redirect",
	PermanentRedirect: "Permanent Redirect",

	BadRequest:           "Bad Request",
	Unauthorized:         "Unauthorized",
	PaymentRequired:      "Payment Required",
	Forbidden:            "Forbidden",
	NotFound:             "Not Found",
	MethodNotAllowed:     "Method Not Allowed",
	NotAcceptable:        "Not Acceptable",
	RequestTimeout:       "Request Timeout",
	Conflict:             "Conflict",
	Gone:                 "Gone",
	LengthRequired:       "Length Required",
	PreconditionFailed:   "Precondition Failed",
	PayloadTooLarge:      "Payload Too Large",
	UnsupportedMediaType: "Unsupported Media Type",
	UnprocessableEntity:  "Unprocessable Entity",
	TooManyRequests:      "Too Many Requests",

	InternalServerError: "Internal Server Error",
	NotImplemented:      "Not Implemented",
	BadGateway:           "Bad Gateway",
	ServiceUnavailable:   "Service Unavailable",
	GatewayTimeout:       "Gateway Timeout",
}

// Valid reports whether the status is a positive code. It does not
// check the code against the known set, and does not distinguish
// success from error.
func (s Status) Valid() bool { return s > 0 }

// ReasonPhrase returns the standard text for the status, or a
// placeholder for an unrecognized code.
func (s Status) ReasonPhrase() string {
	if rp, ok := reasonPhrases[s]; ok {
		return rp
	}
	return "(Undefined Status)"
}

// String renders the three-digit numeric form, or "N/A" if the status
// is out of the valid 1..999 range.
func (s Status) String() string {
	if s <= 0 || s > 999 {
		return "N/A"
	}
	return fmt.Sprintf("%03d", int(s))
}

// Parse reads a three-digit numeric status string, returning None if
// s isn't exactly three digits.
func Parse(s string) Status {
	if len(s) != 3 {
		return None
	}
	n := 0
	for i := 0; i < 3; i++ {
		if s[i] < '0' || s[i] > '9' {
			return None
		}
		n = n*10 + int(s[i]-'0')
	}
	return Status(n)
}

func (s Status) IsInformational() bool { return s >= 100 && s < 200 }
func (s Status) IsSuccessful() bool    { return s >= 200 && s < 300 }
func (s Status) IsRedirection() bool   { return s >= 300 && s < 400 }
func (s Status) IsClientError() bool   { return s >= 400 && s < 500 }
func (s Status) IsServerError() bool   { return s >= 500 && s < 600 }
func (s Status) IsError() bool         { return s.IsClientError() || s.IsServerError() }

// Exception is returned (or, for handlers invoked synchronously by
// the bus, may be raised as a panic and recovered into a response)
// when a service wants to answer with a given status. It carries only
// the status: the response built from it has no payload. It mirrors
// pleb's status_exception.
type Exception struct {
	Status Status
}

func (e *Exception) Error() string { return e.Status.ReasonPhrase() }
