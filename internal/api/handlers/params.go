package handlers

import (
	"fmt"

	"recipe-management/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func parseUUID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", domain.ErrParseUUID, raw)
	}
	return id, nil
}

func paramUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	return parseUUID(c.Params(key))
}
