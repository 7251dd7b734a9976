package scenario

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	ru "github.com/mcdev12/randomuser/go/clients/randomuser_client"
	"github.com/mcdev12/randomuser/go/internal/models"
	"github.com/mcdev12/randomuser/go/internal/validation"
)

const (
	// MaxLatency is the coarse response-time budget for a single request.
	MaxLatency = 3000 * time.Millisecond

	// JSONContentType is what the users endpoint must advertise.
	JSONContentType = "application/json; charset=utf-8"

	determinismSeed = "testseed123"
	infoSeed        = "testseed"
)

// sampledNationalities are checked one request each.
var sampledNationalities = []string{"us", "gb", "fr", "de", "es"}

// Catalog returns the full conformance battery.
func Catalog() []Scenario {
	return []Scenario{
		{1, "single_user", "default request returns one user on page 1", singleUser},
		{2, "multiple_users", "results=5 returns five users", multipleUsers},
		{3, "gender_filter", "each gender filter returns only that gender", genderFilter},
		{4, "nationality_filter", "nat=us returns only US users", nationalityFilter},
		{5, "seed_determinism", "the same seed yields the same user", seedDeterminism},
		{6, "pagination", "page=2 is echoed in info", pagination},
		{7, "max_results_limit", "results=5000 stays within the server cap", maxResultsLimit},
		{8, "user_data_structure", "core and contact fields are present", userDataStructure},
		{9, "response_time", "a default request completes within budget", responseTime},
		{10, "invalid_parameters", "non-numeric results is answered with 200 or 400", invalidParameters},
		{11, "content_type", "responses are JSON with utf-8 charset", contentType},
		{12, "email_format", "every email matches the address pattern", emailFormat},
		{13, "name_fields", "first and last names are non-empty", nameFields},
		{14, "location_data", "location is complete with a positive street number", locationData},
		{15, "different_nationalities", "each sampled nat filter is honoured", differentNationalities},
		{16, "mixed_gender", "unfiltered results carry known genders", mixedGender},
		{17, "info_structure", "info carries seed, count, page and version", infoStructure},
		{18, "picture_urls", "picture URLs are https", pictureURLs},
		{19, "login_data", "login has username and a valid uuid", loginData},
		{20, "dob_and_registered", "dob and registered dates and ages are sane", dobAndRegistered},
	}
}

func singleUser(ctx context.Context, env *Env) error {
	users, err := env.fetchValid(ctx, ru.UsersQuery{})
	if err != nil {
		return err
	}
	if err := validation.ResultCount(users, 1); err != nil {
		return err
	}
	if err := validation.Page(users, 1); err != nil {
		return err
	}
	if users.Info.Version == "" {
		return &validation.AssertionError{Field: "info.version", Message: "should not be null"}
	}
	return nil
}

func multipleUsers(ctx context.Context, env *Env) error {
	users, err := env.fetchValid(ctx, ru.UsersQuery{}.WithResults(5))
	if err != nil {
		return err
	}
	if err := validation.ResultCount(users, 5); err != nil {
		return err
	}
	return validation.InfoConsistency(users)
}

func genderFilter(ctx context.Context, env *Env) error {
	for _, gender := range []ru.Gender{ru.GenderFemale, ru.GenderMale} {
		users, err := env.fetchValid(ctx, ru.UsersQuery{}.WithResults(3).WithGender(gender))
		if err != nil {
			return fmt.Errorf("gender=%s: %w", gender, err)
		}
		if err := validation.Each(users.Results, validation.GenderIs(string(gender))); err != nil {
			return fmt.Errorf("gender=%s: %w", gender, err)
		}
	}
	return nil
}

func nationalityFilter(ctx context.Context, env *Env) error {
	users, err := env.fetchValid(ctx, ru.UsersQuery{}.WithResults(3).WithNationality("us"))
	if err != nil {
		return err
	}
	return validation.Each(users.Results, validation.NationalityIs("US"))
}

func seedDeterminism(ctx context.Context, env *Env) error {
	q := ru.UsersQuery{}.WithResults(1).WithSeed(determinismSeed)

	first, err := env.fetchFirst(ctx, q)
	if err != nil {
		return fmt.Errorf("first request: %w", err)
	}
	second, err := env.fetchFirst(ctx, q)
	if err != nil {
		return fmt.Errorf("second request: %w", err)
	}

	if first.Email != second.Email {
		return &validation.AssertionError{
			Field:    "results[0].email",
			Message:  "users with the same seed should be identical",
			Expected: first.Email,
			Actual:   second.Email,
		}
	}
	return nil
}

func pagination(ctx context.Context, env *Env) error {
	users, err := env.fetchValid(ctx, ru.UsersQuery{}.WithPage(2).WithResults(3))
	if err != nil {
		return err
	}
	return validation.Page(users, 2)
}

func maxResultsLimit(ctx context.Context, env *Env) error {
	users, err := env.fetchValid(ctx, ru.UsersQuery{}.WithResults(ru.MaxResults))
	if err != nil {
		return err
	}
	if err := validation.MaxResultCount(users, ru.MaxResults); err != nil {
		return err
	}
	return validation.InfoConsistency(users)
}

func userDataStructure(ctx context.Context, env *Env) error {
	user, err := env.fetchFirst(ctx, ru.UsersQuery{})
	if err != nil {
		return err
	}
	if err := validation.UserData(user); err != nil {
		return err
	}
	return validation.ContactFields(user)
}

func responseTime(ctx context.Context, env *Env) error {
	resp, err := env.Client.GetUsers(ctx, ru.UsersQuery{})
	if err != nil {
		return err
	}
	if err := validation.StatusCode(resp, http.StatusOK); err != nil {
		return err
	}
	return validation.Latency(resp, MaxLatency)
}

// invalidParameters tolerates both behaviours the API has shown for a
// non-numeric results value: a 200 with the default count, or a 400.
func invalidParameters(ctx context.Context, env *Env) error {
	resp, err := env.Client.GetRaw(ctx, url.Values{ru.ResultsParam: {"invalid"}})
	if err != nil {
		return err
	}
	return validation.StatusCodeIn(resp, http.StatusOK, http.StatusBadRequest)
}

func contentType(ctx context.Context, env *Env) error {
	resp, err := env.Client.GetUsers(ctx, ru.UsersQuery{})
	if err != nil {
		return err
	}
	if err := validation.StatusCode(resp, http.StatusOK); err != nil {
		return err
	}
	return validation.ContentType(resp, JSONContentType)
}

func emailFormat(ctx context.Context, env *Env) error {
	users, err := env.fetchValid(ctx, ru.UsersQuery{}.WithResults(10))
	if err != nil {
		return err
	}
	return validation.Each(users.Results, validation.EmailFormat)
}

func nameFields(ctx context.Context, env *Env) error {
	users, err := env.fetchValid(ctx, ru.UsersQuery{}.WithResults(5))
	if err != nil {
		return err
	}
	return validation.Each(users.Results, validation.NameFields)
}

func locationData(ctx context.Context, env *Env) error {
	user, err := env.fetchFirst(ctx, ru.UsersQuery{})
	if err != nil {
		return err
	}
	return validation.LocationData(user)
}

func differentNationalities(ctx context.Context, env *Env) error {
	for _, nat := range sampledNationalities {
		user, err := env.fetchFirst(ctx, ru.UsersQuery{}.WithResults(1).WithNationality(nat))
		if err != nil {
			return fmt.Errorf("nat=%s: %w", nat, err)
		}
		if err := validation.NationalityIs(nat)(user); err != nil {
			return err
		}
	}
	return nil
}

func mixedGender(ctx context.Context, env *Env) error {
	users, err := env.fetchValid(ctx, ru.UsersQuery{}.WithResults(10))
	if err != nil {
		return err
	}

	counts := countGenders(users.Results)
	if counts[string(ru.GenderMale)] == 0 && counts[string(ru.GenderFemale)] == 0 {
		return &validation.AssertionError{
			Field:   "results[].gender",
			Message: "should return male or female users in mixed results",
		}
	}
	return nil
}

func infoStructure(ctx context.Context, env *Env) error {
	_, users, err := env.fetch(ctx, ru.UsersQuery{}.WithResults(5).WithSeed(infoSeed))
	if err != nil {
		return err
	}
	return validation.InfoStructure(users, 5)
}

func pictureURLs(ctx context.Context, env *Env) error {
	user, err := env.fetchFirst(ctx, ru.UsersQuery{})
	if err != nil {
		return err
	}
	return validation.PictureURLs(user)
}

func loginData(ctx context.Context, env *Env) error {
	user, err := env.fetchFirst(ctx, ru.UsersQuery{})
	if err != nil {
		return err
	}
	return validation.LoginData(user)
}

func dobAndRegistered(ctx context.Context, env *Env) error {
	user, err := env.fetchFirst(ctx, ru.UsersQuery{})
	if err != nil {
		return err
	}
	return validation.Dates(user)
}

func countGenders(users []models.User) map[string]int {
	counts := make(map[string]int)
	for _, u := range users {
		counts[u.Gender]++
	}
	return counts
}
