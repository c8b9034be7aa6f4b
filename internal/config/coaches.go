package config

import (
	"log"
	"os"
	"sync"

	"github.com/tidwall/gjson"
)

// CoachConfig holds the fixed coach accounts. There is no registration:
// COACHES_JSON is a JSON object of username -> bcrypt password hash,
// provisioned alongside the deployment.
type CoachConfig struct {
	Credentials map[string]string
}

var (
	coachConfig *CoachConfig
	coachOnce   sync.Once
)

func LoadCoachConfig() *CoachConfig {
	coachOnce.Do(func() {
		raw := os.Getenv("COACHES_JSON")
		creds := ParseCoachCredentials(raw)
		if len(creds) == 0 {
			log.Println("Warning: no coach accounts configured, logins will be rejected")
		}
		coachConfig = &CoachConfig{Credentials: creds}
	})
	return coachConfig
}

// ParseCoachCredentials parses a COACHES_JSON document. Anything that is
// not a JSON object of string pairs yields an empty table rather than an
// error; a bad credential document must not keep the server from starting.
func ParseCoachCredentials(raw string) map[string]string {
	creds := make(map[string]string)
	if raw == "" {
		return creds
	}
	parsed := gjson.Parse(raw)
	if !parsed.IsObject() {
		log.Println("Warning: COACHES_JSON is not a JSON object, ignoring it")
		return creds
	}
	parsed.ForEach(func(username, hash gjson.Result) bool {
		if username.String() != "" && hash.Type == gjson.String && hash.String() != "" {
			creds[username.String()] = hash.String()
		}
		return true
	})
	return creds
}
