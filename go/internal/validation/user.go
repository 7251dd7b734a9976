package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/randomuser/go/internal/models"
)

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// UserCheck validates a single user.
type UserCheck func(u models.User) error

// Each runs check against every user, stopping at the first failure. The
// failing field is prefixed with the user's position.
func Each(users []models.User, check UserCheck) error {
	for i, u := range users {
		if err := check(u); err != nil {
			var ae *AssertionError
			if errors.As(err, &ae) {
				scoped := *ae
				scoped.Field = fmt.Sprintf("results[%d].%s", i, ae.Field)
				return &scoped
			}
			return fmt.Errorf("results[%d]: %w", i, err)
		}
	}
	return nil
}

// UserData checks the core fields are present and the email looks like one.
func UserData(u models.User) error {
	switch {
	case u.Gender == "":
		return missing("gender")
	case u.Name == nil:
		return missing("name")
	case u.Email == "":
		return missing("email")
	case u.Location == nil:
		return missing("location")
	case !strings.Contains(u.Email, "@"):
		return fail("email", "should contain @", "an address with @", u.Email)
	}
	return nil
}

// EmailFormat checks the email matches the basic local@domain pattern.
func EmailFormat(u models.User) error {
	if !emailRegex.MatchString(u.Email) {
		return fail("email", "should be in valid format", emailRegex.String(), u.Email)
	}
	return nil
}

func NameFields(u models.User) error {
	switch {
	case u.Name == nil:
		return missing("name")
	case u.Name.First == "":
		return empty("name.first")
	case u.Name.Last == "":
		return empty("name.last")
	}
	return nil
}

// LocationData checks the address parts; street numbers must be positive.
func LocationData(u models.User) error {
	loc := u.Location
	switch {
	case loc == nil:
		return missing("location")
	case loc.City == "":
		return missing("location.city")
	case loc.Country == "":
		return missing("location.country")
	case loc.State == "":
		return missing("location.state")
	case loc.Street == nil:
		return missing("location.street")
	case loc.Street.Name == "":
		return missing("location.street.name")
	case loc.Street.Number <= 0:
		return fail("location.street.number", "should be positive", "> 0", loc.Street.Number)
	}
	return nil
}

// PictureURLs checks every picture size is served over https.
func PictureURLs(u models.User) error {
	if u.Picture == nil {
		return missing("picture")
	}

	for _, p := range []struct{ field, url string }{
		{"picture.large", u.Picture.Large},
		{"picture.medium", u.Picture.Medium},
		{"picture.thumbnail", u.Picture.Thumbnail},
	} {
		if !strings.HasPrefix(p.url, "https://") {
			return fail(p.field, "should be an https URL", "https://...", p.url)
		}
	}
	return nil
}

// LoginData checks username and uuid are present and the uuid parses.
func LoginData(u models.User) error {
	switch {
	case u.Login == nil:
		return missing("login")
	case u.Login.Username == "":
		return missing("login.username")
	case u.Login.UUID == "":
		return missing("login.uuid")
	}

	if _, err := uuid.Parse(u.Login.UUID); err != nil {
		return fail("login.uuid", "should be a valid UUID", "RFC 4122 UUID", u.Login.UUID)
	}
	return nil
}

// Dates checks dob (age > 0) and registered (age >= 0).
func Dates(u models.User) error {
	switch {
	case u.Dob == nil || u.Dob.Date.IsZero():
		return missing("dob.date")
	case u.Dob.Age <= 0:
		return fail("dob.age", "should be positive", "> 0", u.Dob.Age)
	case u.Registered == nil || u.Registered.Date.IsZero():
		return missing("registered.date")
	case u.Registered.Age < 0:
		return fail("registered.age", "should be non-negative", ">= 0", u.Registered.Age)
	}
	return nil
}

func ContactFields(u models.User) error {
	switch {
	case u.Phone == "":
		return missing("phone")
	case u.Cell == "":
		return missing("cell")
	case u.Picture == nil:
		return missing("picture")
	}
	return nil
}

// GenderIs returns a check that the user's gender equals want.
func GenderIs(want string) UserCheck {
	return func(u models.User) error {
		if u.Gender != want {
			return fail("gender", "unexpected gender", want, u.Gender)
		}
		return nil
	}
}

// NationalityIs returns a check that the user's nationality equals want,
// ignoring case.
func NationalityIs(want string) UserCheck {
	return func(u models.User) error {
		if !strings.EqualFold(u.Nat, want) {
			return fail("nat", "unexpected nationality", strings.ToUpper(want), u.Nat)
		}
		return nil
	}
}
