package kinds

import (
	"github.com/amp-labs/amp-dependent/dependent"
	"github.com/amp-labs/amp-dependent/optional"
	"github.com/amp-labs/amp-dependent/validator"
	"github.com/google/uuid"
)

// UUIDConfig restricts accepted UUIDs to one version. Version 0 accepts any
// version, but never the nil UUID.
type UUIDConfig struct {
	Version uuid.Version `yaml:"version"`
}

// UUIDRule parses candidate in any form uuid.Parse understands (plain, braced,
// urn:uuid:) and yields the parsed value.
func UUIDRule(config UUIDConfig, candidate string) optional.Value[uuid.UUID] {
	id, err := uuid.Parse(candidate)
	if err != nil || id == uuid.Nil {
		return optional.None[uuid.UUID]()
	}

	if config.Version != 0 && id.Version() != config.Version {
		return optional.None[uuid.UUID]()
	}

	return optional.Some(id)
}

func UUIDValidator(version uuid.Version) validator.Validator[UUIDConfig, string, uuid.UUID] {
	return validator.New(UUIDConfig{Version: version},
		validator.Rule[UUIDConfig, string, uuid.UUID](UUIDRule))
}

type (
	// UUID is any non-nil UUID.
	UUID struct{}
	// UUIDv7 is a time-ordered version 7 UUID.
	UUIDv7 struct{}
)

//nolint:gochecknoglobals
var (
	UUIDs   = dependent.Bind[UUID](UUIDValidator(0))
	UUIDv7s = dependent.Bind[UUIDv7](UUIDValidator(7))
)
