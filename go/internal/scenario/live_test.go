package scenario

import (
	"context"
	"os"
	"testing"

	"github.com/mcdev12/randomuser/go/clients/randomuser_client"
	"github.com/stretchr/testify/assert"
)

// TestCatalog_Live runs the battery against the public API. Set
// RANDOMUSER_LIVE=1 to enable it.
func TestCatalog_Live(t *testing.T) {
	if os.Getenv("RANDOMUSER_LIVE") != "1" {
		t.Skip("set RANDOMUSER_LIVE=1 to run against randomuser.me")
	}

	client := randomuser_client.NewRandomUserClient(randomuser_client.BaseURL)
	client.SetRateLimit(2)

	report := NewRunner(&Env{Client: client}, Catalog()).Run(context.Background())
	for _, r := range report.Results {
		assert.NoError(t, r.Err, r.Name)
	}
}
