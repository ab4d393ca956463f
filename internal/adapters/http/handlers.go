package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouteHandler computes distance, azimuth and path for a coordinate
// pair. The four query parameters are passed through as raw strings;
// missing or malformed values are not an error, the response simply
// carries the prompt text and whichever markers were valid.
func RouteHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := deps.Routes.Compute(c.UserContext(),
			c.Query("start_lat"),
			c.Query("start_lon"),
			c.Query("dest_lat"),
			c.Query("dest_lon"),
		)
		return c.JSON(result)
	}
}
