// Package scenario holds the conformance battery and the sequential runner
// that executes it.
package scenario

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"sort"

	"github.com/mcdev12/randomuser/go/clients"
	"github.com/mcdev12/randomuser/go/clients/randomuser_client"
	"github.com/mcdev12/randomuser/go/internal/models"
	"github.com/mcdev12/randomuser/go/internal/validation"
)

// Scenario is one independent check against the API. Priority only orders
// execution; no scenario depends on another.
type Scenario struct {
	Priority    int
	Name        string
	Description string
	Run         func(ctx context.Context, env *Env) error
}

// Env is what a scenario gets to work with.
type Env struct {
	Client *randomuser_client.RandomUserClient
}

// fetch sends q, requires a 200 and decodes the envelope.
func (e *Env) fetch(ctx context.Context, q randomuser_client.UsersQuery) (*clients.Response, *models.UserResponse, error) {
	resp, err := e.Client.GetUsers(ctx, q)
	if err != nil {
		return nil, nil, err
	}

	if err := validation.StatusCode(resp, http.StatusOK); err != nil {
		return resp, nil, err
	}

	users, err := models.DecodeUserResponse(resp.Body)
	if err != nil {
		return resp, nil, err
	}

	return resp, users, nil
}

// fetchValid is fetch followed by the schema check.
func (e *Env) fetchValid(ctx context.Context, q randomuser_client.UsersQuery) (*models.UserResponse, error) {
	_, users, err := e.fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := validation.ResponseSchema(users); err != nil {
		return nil, err
	}
	return users, nil
}

// fetchFirst returns the first user of a schema-valid response.
func (e *Env) fetchFirst(ctx context.Context, q randomuser_client.UsersQuery) (models.User, error) {
	users, err := e.fetchValid(ctx, q)
	if err != nil {
		return models.User{}, err
	}
	return users.Results[0], nil
}

// Sorted returns scenarios ordered by priority, then name.
func Sorted(scenarios []Scenario) []Scenario {
	out := append([]Scenario(nil), scenarios...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Filter keeps the scenarios whose name matches pattern. An empty pattern
// keeps everything.
func Filter(scenarios []Scenario, pattern string) ([]Scenario, error) {
	if pattern == "" {
		return scenarios, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario pattern: %w", err)
	}

	var out []Scenario
	for _, s := range scenarios {
		if re.MatchString(s.Name) {
			out = append(out, s)
		}
	}
	return out, nil
}
