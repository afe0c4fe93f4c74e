package server

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"bjjsocial/internal/models"
	"bjjsocial/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const (
	maxPaginationLimit     = 100
	defaultLeaderboardSize = 50
	defaultPostsLimit      = 50
	defaultMatchesLimit    = 10
)

// respondError writes err with the status its code implies.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusFor(err), err)
}

func badRequest(c *fiber.Ctx, msg string) error {
	_ = models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(msg))
	return errResponseWritten
}

// currentUserID returns the id stored by AuthRequired.
func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}

// parseLimit reads ?limit, which must lie in [1, 100]. On failure it writes
// a 400 response and returns errResponseWritten.
func parseLimit(c *fiber.Ctx, defaultLimit int) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxPaginationLimit {
		return 0, badRequest(c, "limit must be an integer between 1 and 100")
	}
	return limit, nil
}

func parseOffset(c *fiber.Ctx) (int, error) {
	raw := c.Query("offset")
	if raw == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0, badRequest(c, "offset must be a non-negative integer")
	}
	return offset, nil
}

// parsePagination reads ?page (>= 1, default 1) and ?limit.
func parsePagination(c *fiber.Ctx, defaultLimit int) (service.Pagination, error) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 {
			return service.Pagination{}, badRequest(c, "page must be a positive integer")
		}
		page = p
	}
	limit, err := parseLimit(c, defaultLimit)
	if err != nil {
		return service.Pagination{}, err
	}
	return service.Pagination{Page: page, Limit: limit}, nil
}

// parseBoolQuery returns nil when the parameter is absent.
func parseBoolQuery(c *fiber.Ctx, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, badRequest(c, key+" must be true or false")
	}
	return &v, nil
}

// optionalQuery returns nil for an absent or empty parameter.
func optionalQuery(c *fiber.Ctx, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}

// parseUUIDParam extracts a route parameter that must be a UUID.
// On failure it writes a 400 JSON response and returns errResponseWritten.
func parseUUIDParam(c *fiber.Ctx, param string) (string, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return "", badRequest(c, "Invalid "+humanizeParam(param))
	}
	return id.String(), nil
}

// pathParam returns the unescaped value of a free-text route parameter.
func pathParam(c *fiber.Ctx, param string) (string, error) {
	v, err := url.PathUnescape(c.Params(param))
	if err != nil || strings.TrimSpace(v) == "" {
		return "", badRequest(c, "Invalid "+humanizeParam(param))
	}
	return v, nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "userId" -> "user ID", "matchId" -> "match ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		words := splitCamel(param[:len(param)-2])
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	return append(words, s[start:])
}

// parseLeaderboardFilter reads the optional division filters shared by the
// leaderboard routes.
func parseLeaderboardFilter(c *fiber.Ctx) (models.LeaderboardFilter, error) {
	isGi, err := parseBoolQuery(c, "isGi")
	if err != nil {
		return models.LeaderboardFilter{}, err
	}
	return models.LeaderboardFilter{
		Season:      optionalQuery(c, "season"),
		Ruleset:     optionalQuery(c, "ruleset"),
		IsGi:        isGi,
		Belt:        optionalQuery(c, "belt"),
		WeightClass: optionalQuery(c, "weightClass"),
		AgeDivision: optionalQuery(c, "ageDivision"),
		Gender:      optionalQuery(c, "gender"),
	}, nil
}
