package fakeapi

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/randomuser/go/internal/models"
)

const (
	emailDomain  = "example.com"
	pictureBase  = "https://randomuser.me/api/portraits/"
	saltChars    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	daysPerYear  = 365
	minDobYears  = 18
	maxDobYears  = 77
	maxRegYears  = 20
	portraitSize = 100
)

// epoch anchors generated dates so the same seed always yields the same
// dates regardless of when it is requested. Ages are derived from the clock.
var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Generator produces users from a deterministic stream. Two generators built
// from the same seed and page yield the same users in the same order.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator seeds a generator from seed and page; now is used only to
// compute ages.
func NewGenerator(seed string, page int, now time.Time) *Generator {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return &Generator{
		rng: rand.New(rand.NewPCG(h.Sum64(), uint64(page))),
		now: now,
	}
}

// User generates one user. gender is "male", "female" or "" for either; nats
// restricts the nationality when non-empty.
func (g *Generator) User(gender string, nats []string) models.User {
	if gender == "" {
		gender = g.pick([]string{"male", "female"})
	}

	code := g.pick(nationalityCodes)
	if len(nats) > 0 {
		code = g.pick(nats)
	}
	locale := nationalities[code]

	first := g.pick(femaleFirstNames)
	if gender == "male" {
		first = g.pick(maleFirstNames)
	}
	last := g.pick(lastNames)

	return models.User{
		Gender: gender,
		Name: &models.Name{
			Title: g.pick(titles[gender]),
			First: first,
			Last:  last,
		},
		Location:   g.location(locale),
		Email:      fmt.Sprintf("%s.%s@%s", asciiFold(first), asciiFold(last), emailDomain),
		Login:      g.login(),
		Dob:        g.dateAge(minDobYears, maxDobYears),
		Registered: g.dateAge(0, maxRegYears),
		Phone:      g.phone(locale),
		Cell:       g.phone(locale),
		ID:         g.nationalID(locale),
		Picture:    g.picture(gender),
		Nat:        code,
	}
}

func (g *Generator) location(locale nationality) *models.Location {
	tz := locale.Timezones[g.rng.IntN(len(locale.Timezones))]
	return &models.Location{
		Street: &models.Street{
			Number: 1 + g.rng.IntN(9999),
			Name:   g.pick(locale.Streets),
		},
		City:     g.pick(locale.Cities),
		State:    g.pick(locale.States),
		Country:  locale.Country,
		Postcode: models.Postcode(fmt.Sprintf(locale.Postcode, g.rng.IntN(10000))),
		Coordinates: &models.Coordinates{
			Latitude:  fmt.Sprintf("%.4f", g.rng.Float64()*180-90),
			Longitude: fmt.Sprintf("%.4f", g.rng.Float64()*360-180),
		},
		Timezone: &models.Timezone{
			Offset:      tz.Offset,
			Description: tz.Description,
		},
	}
}

func (g *Generator) login() *models.Login {
	id, err := uuid.NewRandomFromReader(rngReader{g.rng})
	if err != nil {
		// rngReader never fails
		panic("fakeapi: uuid: " + err.Error())
	}

	password := g.pick(passwords)
	salt := make([]byte, 8)
	for i := range salt {
		salt[i] = saltChars[g.rng.IntN(len(saltChars))]
	}
	salted := []byte(password + string(salt))
	md5Sum := md5.Sum(salted)
	sha1Sum := sha1.Sum(salted)
	sha256Sum := sha256.Sum256(salted)

	return &models.Login{
		UUID:     id.String(),
		Username: fmt.Sprintf("%s%s%03d", g.pick(usernameAdjectives), g.pick(usernameNouns), g.rng.IntN(1000)),
		Password: password,
		Salt:     string(salt),
		MD5:      hex.EncodeToString(md5Sum[:]),
		SHA1:     hex.EncodeToString(sha1Sum[:]),
		SHA256:   hex.EncodeToString(sha256Sum[:]),
	}
}

// dateAge picks a date between minYears and maxYears before the epoch.
func (g *Generator) dateAge(minYears, maxYears int) *models.DateAge {
	days := minYears*daysPerYear + g.rng.IntN((maxYears-minYears)*daysPerYear+1)
	ms := g.rng.IntN(int(24 * time.Hour / time.Millisecond))
	date := epoch.AddDate(0, 0, -days).Add(time.Duration(ms) * time.Millisecond)
	return &models.DateAge{
		Date: date,
		Age:  yearsBetween(date, g.now),
	}
}

func (g *Generator) phone(locale nationality) string {
	return fmt.Sprintf(locale.Phone, g.rng.IntN(1000), g.rng.IntN(1000), g.rng.IntN(10000))
}

func (g *Generator) nationalID(locale nationality) *models.ID {
	if locale.IDName == "" {
		return &models.ID{}
	}
	value := fmt.Sprintf("%03d-%02d-%04d", g.rng.IntN(1000), g.rng.IntN(100), g.rng.IntN(10000))
	return &models.ID{Name: locale.IDName, Value: &value}
}

func (g *Generator) picture(gender string) *models.Picture {
	dir := "women"
	if gender == "male" {
		dir = "men"
	}
	file := fmt.Sprintf("%s/%d.jpg", dir, g.rng.IntN(portraitSize))
	return &models.Picture{
		Large:     pictureBase + file,
		Medium:    pictureBase + "med/" + file,
		Thumbnail: pictureBase + "thumb/" + file,
	}
}

func (g *Generator) pick(s []string) string {
	return s[g.rng.IntN(len(s))]
}

// rngReader adapts the generator stream to io.Reader for uuid generation.
type rngReader struct {
	rng *rand.Rand
}

func (r rngReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.Uint32())
	}
	return len(p), nil
}

// yearsBetween returns whole years elapsed from t to now, never negative.
func yearsBetween(t, now time.Time) int {
	years := now.Year() - t.Year()
	if now.Month() < t.Month() || (now.Month() == t.Month() && now.Day() < t.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

var foldReplacer = strings.NewReplacer(
	"ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss", "å", "aa", "ø", "oe", "æ", "ae",
	"é", "e", "è", "e", "ê", "e", "á", "a", "à", "a", "â", "a", "ã", "a",
	"í", "i", "ı", "i", "î", "i", "ó", "o", "ô", "o", "õ", "o", "ú", "u",
	"ç", "c", "ć", "c", "č", "c", "ş", "s", "š", "s", "ž", "z", "đ", "dj", "ñ", "n", "ğ", "g",
)

// asciiFold lowercases s and reduces it to [a-z0-9] so it is safe in an email
// local part.
func asciiFold(s string) string {
	s = foldReplacer.Replace(strings.ToLower(s))
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
