// Package profiles loads environment profiles: named sets of security
// requirements (CR, IR, AR) that describe how much an asset class values
// confidentiality, integrity and availability.
package profiles

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"cvss-scoring-service-golang/internal/cvss"

	"github.com/friendsofgo/errors"
)

// Profile mirrors cvss_environment_profiles columns.
type Profile struct {
	Name                       string
	ConfidentialityRequirement string
	IntegrityRequirement       string
	AvailabilityRequirement    string
}

// Apply returns a copy of m with the profile's requirements filled in where
// m leaves them undefined. Values already present in m win.
func (p *Profile) Apply(m cvss.Metrics) cvss.Metrics {
	out := make(cvss.Metrics, len(m)+3)
	for k, v := range m {
		out[k] = v
	}
	if p == nil {
		return out
	}
	set := func(abbr, code string) {
		if code == "" || code == cvss.NotDefined {
			return
		}
		if cur := out[abbr]; cur == "" || cur == cvss.NotDefined {
			out[abbr] = code
		}
	}
	set("CR", p.ConfidentialityRequirement)
	set("IR", p.IntegrityRequirement)
	set("AR", p.AvailabilityRequirement)
	return out
}

type cachedEntry struct {
	profile *Profile
	expires time.Time
}

var (
	cacheTTL   = 5 * time.Minute
	cacheStore = make(map[string]cachedEntry)
	cacheMu    sync.RWMutex
)

const profileQuery = `
        SELECT name,
               COALESCE(confidentiality_requirement, 'X'),
               COALESCE(integrity_requirement, 'X'),
               COALESCE(availability_requirement, 'X')
        FROM cvss_environment_profiles
        WHERE name = $1
    `

// Get returns a cached profile or fetches it from DB. Unknown names yield a
// nil profile, which Apply treats as empty.
func Get(ctx context.Context, dbConn *sql.DB, name string) (*Profile, error) {
	if name == "" || dbConn == nil {
		return nil, nil
	}

	cacheMu.RLock()
	if entry, ok := cacheStore[name]; ok && time.Now().Before(entry.expires) {
		cacheMu.RUnlock()
		return entry.profile, nil
	}
	cacheMu.RUnlock()

	var p Profile
	err := dbConn.QueryRowContext(ctx, profileQuery, name).Scan(
		&p.Name,
		&p.ConfidentialityRequirement,
		&p.IntegrityRequirement,
		&p.AvailabilityRequirement,
	)
	var found *Profile
	switch {
	case err == nil:
		found = &p
	case errors.Is(err, sql.ErrNoRows):
		// remember the miss as well
	default:
		return nil, errors.Wrapf(err, "load environment profile %q", name)
	}

	cacheMu.Lock()
	cacheStore[name] = cachedEntry{profile: found, expires: time.Now().Add(cacheTTL)}
	cacheMu.Unlock()
	return found, nil
}

// Flush empties the cache.
func Flush() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cacheStore = make(map[string]cachedEntry)
}
