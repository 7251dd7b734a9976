package randomuser_client

const (
	// Base URL
	BaseURL = "https://randomuser.me/api"

	// API Endpoints
	UsersEndpoint = "/"

	// Query parameters
	ResultsParam     = "results"
	GenderParam      = "gender"
	NationalityParam = "nat"
	SeedParam        = "seed"
	PageParam        = "page"

	// Server-enforced cap on results per request
	MaxResults = 5000

	// Headers
	AcceptHeader    = "Accept"
	JsonContentType = "application/json"
)

// Gender is the value of the gender filter.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)
