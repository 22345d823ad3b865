package networkresult

import "net/http"

// IsRetryable reports whether the failure is usually transient: transport
// failures and 408, 429, 502, 503 and 504 responses. It only classifies; retrying is
// left to the caller.
func IsRetryable(err Error) bool {
	switch e := err.(type) {
	case NetworkError:
		return true
	case interface{ Code() int }:
		switch e.Code() {
		case http.StatusRequestTimeout,
			http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}
	return false
}

// IsClientError returns true if the status code is 4xx.
func IsClientError(code int) bool {
	return code >= 400 && code < 500
}

// IsServerError returns true if the status code is 5xx.
func IsServerError(code int) bool {
	return code >= 500 && code < 600
}

// IsSuccessStatus returns true if the status code is 2xx.
func IsSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}

// StatusIn returns true if the status code matches any of the given codes.
func StatusIn(code int, codes ...int) bool {
	for _, c := range codes {
		if code == c {
			return true
		}
	}
	return false
}
