package randomuser_client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mcdev12/randomuser/go/clients"
)

// Opt is a value that is either present or absent. The zero Opt is absent.
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns a present Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the value is present.
func (o Opt[T]) IsSet() bool {
	return o.set
}

// UsersQuery holds the optional filters for a users request. Only present
// values are encoded; present strings that are empty are dropped as well.
// Legality is left to the server.
type UsersQuery struct {
	Results     Opt[int]
	Gender      Opt[Gender]
	Nationality Opt[[]string]
	Seed        Opt[string]
	Page        Opt[int]
}

// Values encodes the present fields as query parameters.
func (q UsersQuery) Values() url.Values {
	v := url.Values{}

	if n, ok := q.Results.Get(); ok {
		v.Set(ResultsParam, strconv.Itoa(n))
	}
	if g, ok := q.Gender.Get(); ok && g != "" {
		v.Set(GenderParam, string(g))
	}
	if nats, ok := q.Nationality.Get(); ok {
		codes := make([]string, 0, len(nats))
		for _, n := range nats {
			if n = strings.TrimSpace(n); n != "" {
				codes = append(codes, n)
			}
		}
		if len(codes) > 0 {
			v.Set(NationalityParam, strings.Join(codes, ","))
		}
	}
	if s, ok := q.Seed.Get(); ok && s != "" {
		v.Set(SeedParam, s)
	}
	if p, ok := q.Page.Get(); ok {
		v.Set(PageParam, strconv.Itoa(p))
	}

	return v
}

// WithResults returns a copy of q requesting n users.
func (q UsersQuery) WithResults(n int) UsersQuery {
	q.Results = Some(n)
	return q
}

// WithGender returns a copy of q filtered to gender g.
func (q UsersQuery) WithGender(g Gender) UsersQuery {
	q.Gender = Some(g)
	return q
}

// WithNationality returns a copy of q filtered to the given nationality codes.
func (q UsersQuery) WithNationality(codes ...string) UsersQuery {
	q.Nationality = Some(codes)
	return q
}

// WithSeed returns a copy of q seeded with seed.
func (q UsersQuery) WithSeed(seed string) UsersQuery {
	q.Seed = Some(seed)
	return q
}

// WithPage returns a copy of q requesting page p.
func (q UsersQuery) WithPage(p int) UsersQuery {
	q.Page = Some(p)
	return q
}

// GetUsers issues a single GET against the users endpoint. The returned
// response is raw: status and body are left for the caller to check.
func (c *RandomUserClient) GetUsers(ctx context.Context, q UsersQuery) (*clients.Response, error) {
	resp, err := c.Get(ctx, UsersEndpoint, q.Values())
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return resp, nil
}
