package validation

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/mcdev12/randomuser/go/clients"
	"github.com/mcdev12/randomuser/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() models.User {
	return models.User{
		Gender: "female",
		Name:   &models.Name{Title: "Ms", First: "Jennie", Last: "Nichols"},
		Location: &models.Location{
			Street:  &models.Street{Number: 8929, Name: "Valwood Pkwy"},
			City:    "Billings",
			State:   "Michigan",
			Country: "United States",
		},
		Email: "jennie.nichols@example.com",
		Login: &models.Login{UUID: "7a0eed16-9430-4d68-901f-c0d4c1c3bf00", Username: "yellowpeacock117"},
		Dob:   &models.DateAge{Date: time.Date(1992, 3, 8, 0, 0, 0, 0, time.UTC), Age: 30},
		Registered: &models.DateAge{
			Date: time.Date(2007, 7, 9, 0, 0, 0, 0, time.UTC),
			Age:  0,
		},
		Phone: "(272) 790-0888",
		Cell:  "(489) 330-2385",
		Picture: &models.Picture{
			Large:     "https://randomuser.me/api/portraits/women/75.jpg",
			Medium:    "https://randomuser.me/api/portraits/med/women/75.jpg",
			Thumbnail: "https://randomuser.me/api/portraits/thumb/women/75.jpg",
		},
		Nat: "US",
	}
}

// requireAssertion checks err is an AssertionError on field.
func requireAssertion(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAssertion))

	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, field, ae.Field)
}

func TestUserChecks_PassOnValidUser(t *testing.T) {
	u := validUser()
	for name, check := range map[string]UserCheck{
		"UserData":      UserData,
		"EmailFormat":   EmailFormat,
		"NameFields":    NameFields,
		"LocationData":  LocationData,
		"PictureURLs":   PictureURLs,
		"LoginData":     LoginData,
		"Dates":         Dates,
		"ContactFields": ContactFields,
		"GenderIs":      GenderIs("female"),
		"NationalityIs": NationalityIs("us"),
	} {
		assert.NoError(t, check(u), name)
	}
}

func TestUserChecks_Failures(t *testing.T) {
	tests := []struct {
		name   string
		check  UserCheck
		mutate func(u *models.User)
		field  string
	}{
		{"gender missing", UserData, func(u *models.User) { u.Gender = "" }, "gender"},
		{"name missing", UserData, func(u *models.User) { u.Name = nil }, "name"},
		{"email missing", UserData, func(u *models.User) { u.Email = "" }, "email"},
		{"location missing", UserData, func(u *models.User) { u.Location = nil }, "location"},
		{"email without at", UserData, func(u *models.User) { u.Email = "jennie.example.com" }, "email"},
		{"email bad local part", EmailFormat, func(u *models.User) { u.Email = "jen nie@example.com" }, "email"},
		{"email empty domain", EmailFormat, func(u *models.User) { u.Email = "jennie@" }, "email"},
		{"first name empty", NameFields, func(u *models.User) { u.Name.First = "" }, "name.first"},
		{"last name empty", NameFields, func(u *models.User) { u.Name.Last = "" }, "name.last"},
		{"city missing", LocationData, func(u *models.User) { u.Location.City = "" }, "location.city"},
		{"country missing", LocationData, func(u *models.User) { u.Location.Country = "" }, "location.country"},
		{"state missing", LocationData, func(u *models.User) { u.Location.State = "" }, "location.state"},
		{"street missing", LocationData, func(u *models.User) { u.Location.Street = nil }, "location.street"},
		{"street name missing", LocationData, func(u *models.User) { u.Location.Street.Name = "" }, "location.street.name"},
		{"street number zero", LocationData, func(u *models.User) { u.Location.Street.Number = 0 }, "location.street.number"},
		{"picture missing", PictureURLs, func(u *models.User) { u.Picture = nil }, "picture"},
		{"large over http", PictureURLs, func(u *models.User) { u.Picture.Large = "http://x/1.jpg" }, "picture.large"},
		{"medium empty", PictureURLs, func(u *models.User) { u.Picture.Medium = "" }, "picture.medium"},
		{"thumbnail relative", PictureURLs, func(u *models.User) { u.Picture.Thumbnail = "/thumb.jpg" }, "picture.thumbnail"},
		{"login missing", LoginData, func(u *models.User) { u.Login = nil }, "login"},
		{"username missing", LoginData, func(u *models.User) { u.Login.Username = "" }, "login.username"},
		{"uuid missing", LoginData, func(u *models.User) { u.Login.UUID = "" }, "login.uuid"},
		{"uuid malformed", LoginData, func(u *models.User) { u.Login.UUID = "not-a-uuid" }, "login.uuid"},
		{"dob missing", Dates, func(u *models.User) { u.Dob = nil }, "dob.date"},
		{"dob zero date", Dates, func(u *models.User) { u.Dob.Date = time.Time{} }, "dob.date"},
		{"dob age zero", Dates, func(u *models.User) { u.Dob.Age = 0 }, "dob.age"},
		{"registered missing", Dates, func(u *models.User) { u.Registered = nil }, "registered.date"},
		{"registered negative", Dates, func(u *models.User) { u.Registered.Age = -1 }, "registered.age"},
		{"phone missing", ContactFields, func(u *models.User) { u.Phone = "" }, "phone"},
		{"cell missing", ContactFields, func(u *models.User) { u.Cell = "" }, "cell"},
		{"contact picture missing", ContactFields, func(u *models.User) { u.Picture = nil }, "picture"},
		{"wrong gender", GenderIs("male"), func(u *models.User) {}, "gender"},
		{"wrong nationality", NationalityIs("gb"), func(u *models.User) {}, "nat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)
			requireAssertion(t, tt.check(u), tt.field)
		})
	}
}

func TestNationalityIs_IgnoresCase(t *testing.T) {
	u := validUser()
	u.Nat = "us"
	assert.NoError(t, NationalityIs("US")(u))
	assert.NoError(t, NationalityIs("uS")(u))
}

func TestEach_PrefixesFailingIndex(t *testing.T) {
	users := []models.User{validUser(), validUser(), validUser()}
	users[2].Gender = "male"

	err := Each(users, GenderIs("female"))
	requireAssertion(t, err, "results[2].gender")

	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "female", ae.Expected)
	assert.Equal(t, "male", ae.Actual)
	assert.Contains(t, err.Error(), "results[2].gender")
}

func TestEach_EmptyPasses(t *testing.T) {
	assert.NoError(t, Each(nil, GenderIs("female")))
}

func TestEach_WrapsForeignErrors(t *testing.T) {
	boom := errors.New("boom")
	err := Each([]models.User{validUser()}, func(models.User) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "results[0]")
}

func response(status int, contentType string, d time.Duration) *clients.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &clients.Response{StatusCode: status, Header: h, Duration: d}
}

func TestStatusCode(t *testing.T) {
	assert.NoError(t, StatusCode(response(200, "", 0), 200))

	err := StatusCode(response(503, "", 0), 200)
	requireAssertion(t, err, "status")
	assert.Contains(t, err.Error(), "expected 200, got 503")
}

func TestStatusCodeIn(t *testing.T) {
	assert.NoError(t, StatusCodeIn(response(200, "", 0), 200, 400))
	assert.NoError(t, StatusCodeIn(response(400, "", 0), 200, 400))

	err := StatusCodeIn(response(500, "", 0), 200, 400)
	requireAssertion(t, err, "status")
	assert.Contains(t, err.Error(), "one of 200, 400")
}

func TestContentType(t *testing.T) {
	const want = "application/json; charset=utf-8"
	assert.NoError(t, ContentType(response(200, want, 0), want))
	requireAssertion(t, ContentType(response(200, "text/html", 0), want), "content-type")
	requireAssertion(t, ContentType(response(200, "", 0), want), "content-type")
}

func TestLatency(t *testing.T) {
	assert.NoError(t, Latency(response(200, "", 2999*time.Millisecond), 3*time.Second))
	requireAssertion(t, Latency(response(200, "", 3*time.Second), 3*time.Second), "duration")
}

func envelope(n int) *models.UserResponse {
	users := make([]models.User, n)
	for i := range users {
		users[i] = validUser()
	}
	return &models.UserResponse{
		Results: users,
		Info:    &models.Info{Seed: "abc", Results: n, Page: 1, Version: "1.4"},
	}
}

func TestResponseSchema(t *testing.T) {
	assert.NoError(t, ResponseSchema(envelope(1)))

	requireAssertion(t, ResponseSchema(nil), "response")
	requireAssertion(t, ResponseSchema(&models.UserResponse{Info: &models.Info{}}), "results")
	requireAssertion(t, ResponseSchema(&models.UserResponse{Results: []models.User{{}}}), "info")
	requireAssertion(t, ResponseSchema(&models.UserResponse{Results: []models.User{}, Info: &models.Info{}}), "results")
}

func TestInfoConsistency(t *testing.T) {
	r := envelope(3)
	assert.NoError(t, InfoConsistency(r))

	r.Info.Results = 2
	requireAssertion(t, InfoConsistency(r), "info.results")

	requireAssertion(t, InfoConsistency(&models.UserResponse{}), "info")
}

func TestCountsAndPage(t *testing.T) {
	r := envelope(5)
	assert.NoError(t, ResultCount(r, 5))
	requireAssertion(t, ResultCount(r, 4), "results")

	assert.NoError(t, MaxResultCount(r, 5))
	requireAssertion(t, MaxResultCount(r, 4), "results")

	assert.NoError(t, Page(r, 1))
	requireAssertion(t, Page(r, 2), "info.page")
	requireAssertion(t, Page(&models.UserResponse{}, 1), "info")
}

func TestInfoStructure(t *testing.T) {
	assert.NoError(t, InfoStructure(envelope(5), 5))

	tests := []struct {
		name   string
		mutate func(i *models.Info)
		field  string
	}{
		{"seed missing", func(i *models.Info) { i.Seed = "" }, "info.seed"},
		{"results mismatch", func(i *models.Info) { i.Results = 4 }, "info.results"},
		{"page zero", func(i *models.Info) { i.Page = 0 }, "info.page"},
		{"version missing", func(i *models.Info) { i.Version = "" }, "info.version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := envelope(5)
			tt.mutate(r.Info)
			requireAssertion(t, InfoStructure(r, 5), tt.field)
		})
	}

	requireAssertion(t, InfoStructure(&models.UserResponse{}, 1), "info")
}
