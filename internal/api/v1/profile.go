package v1

import (
	"regexp"
	"strings"

	fiber "github.com/gofiber/fiber/v2"
)

const profileHeader = "X-CVSS-Profile"

var profileName = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]{0,63}$`)

// requestProfile picks the environment profile for a request. A profile in
// the body wins over the header.
func requestProfile(c *fiber.Ctx, fromBody string) (string, error) {
	name := strings.TrimSpace(fromBody)
	if name == "" {
		name = strings.TrimSpace(c.Get(profileHeader))
	}
	if name == "" {
		return "", nil
	}

	name = strings.ToLower(name)
	if !profileName.MatchString(name) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid environment profile name")
	}
	return name, nil
}
