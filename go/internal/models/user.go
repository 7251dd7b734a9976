package models

import "time"

// User is a single generated person as returned by the API
type User struct {
	Gender     string    `json:"gender"`
	Name       *Name     `json:"name"`
	Location   *Location `json:"location"`
	Email      string    `json:"email"`
	Login      *Login    `json:"login"`
	Dob        *DateAge  `json:"dob"`
	Registered *DateAge  `json:"registered"`
	Phone      string    `json:"phone"`
	Cell       string    `json:"cell"`
	ID         *ID       `json:"id"`
	Picture    *Picture  `json:"picture"`
	Nat        string    `json:"nat"`
}

type Name struct {
	Title string `json:"title"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// Login carries the generated account credentials.
type Login struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
	Password string `json:"password"`
	Salt     string `json:"salt"`
	MD5      string `json:"md5"`
	SHA1     string `json:"sha1"`
	SHA256   string `json:"sha256"`
}

// DateAge pairs a timestamp with the whole years elapsed since it.
type DateAge struct {
	Date time.Time `json:"date"`
	Age  int       `json:"age"`
}

// ID is a national identifier; Value is null for some nationalities.
type ID struct {
	Name  string  `json:"name"`
	Value *string `json:"value"`
}

type Picture struct {
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Thumbnail string `json:"thumbnail"`
}

// FullName returns "First Last", or "" when the name is absent.
func (u User) FullName() string {
	if u.Name == nil {
		return ""
	}
	return u.Name.First + " " + u.Name.Last
}
