package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/mcdev12/randomuser/go/clients"
	"github.com/mcdev12/randomuser/go/internal/models"
)

// StatusCode checks the response status equals want.
func StatusCode(resp *clients.Response, want int) error {
	if resp.StatusCode != want {
		return fail("status", "unexpected status code", want, resp.StatusCode)
	}
	return nil
}

// StatusCodeIn checks the response status is one of the accepted codes.
func StatusCodeIn(resp *clients.Response, accepted ...int) error {
	for _, code := range accepted {
		if resp.StatusCode == code {
			return nil
		}
	}

	codes := make([]string, len(accepted))
	for i, code := range accepted {
		codes[i] = strconv.Itoa(code)
	}
	return fail("status", "status code not in accepted set", "one of "+strings.Join(codes, ", "), resp.StatusCode)
}

// ContentType checks the Content-Type header matches want exactly.
func ContentType(resp *clients.Response, want string) error {
	if got := resp.ContentType(); got != want {
		return fail("content-type", "unexpected content type", want, got)
	}
	return nil
}

// Latency checks the request completed in under max.
func Latency(resp *clients.Response, max time.Duration) error {
	if resp.Duration >= max {
		return fail("duration", "response too slow", "< "+max.String(), resp.Duration)
	}
	return nil
}

// ResponseSchema checks the envelope has a non-empty results list and info.
func ResponseSchema(r *models.UserResponse) error {
	switch {
	case r == nil:
		return missing("response")
	case r.Results == nil:
		return missing("results")
	case r.Info == nil:
		return missing("info")
	case len(r.Results) == 0:
		return &AssertionError{Field: "results", Message: "should contain users"}
	}
	return nil
}

// InfoConsistency checks info.results agrees with the number of users returned.
func InfoConsistency(r *models.UserResponse) error {
	if r.Info == nil {
		return missing("info")
	}
	if r.Info.Results != len(r.Results) {
		return fail("info.results", "does not match results length", len(r.Results), r.Info.Results)
	}
	return nil
}

// ResultCount checks exactly want users were returned.
func ResultCount(r *models.UserResponse, want int) error {
	if len(r.Results) != want {
		return fail("results", "unexpected number of users", want, len(r.Results))
	}
	return nil
}

// MaxResultCount checks no more than max users were returned.
func MaxResultCount(r *models.UserResponse, max int) error {
	if len(r.Results) > max {
		return fail("results", "exceeds max results limit", "<= "+strconv.Itoa(max), len(r.Results))
	}
	return nil
}

// Page checks info.page echoes want.
func Page(r *models.UserResponse, want int) error {
	if r.Info == nil {
		return missing("info")
	}
	if r.Info.Page != want {
		return fail("info.page", "unexpected page", want, r.Info.Page)
	}
	return nil
}

// InfoStructure checks every info field is populated and results matches want.
func InfoStructure(r *models.UserResponse, wantResults int) error {
	info := r.Info
	switch {
	case info == nil:
		return missing("info")
	case info.Seed == "":
		return missing("info.seed")
	case info.Results != wantResults:
		return fail("info.results", "results count should match", wantResults, info.Results)
	case info.Page < 1:
		return fail("info.page", "page should be at least 1", ">= 1", info.Page)
	case info.Version == "":
		return missing("info.version")
	}
	return nil
}
