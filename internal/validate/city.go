package validate

import "cityguide/internal/domain"

// CityInput is the raw city payload as deserialized by the transport
// layer. A nil ID means the id key was absent.
type CityInput struct {
	ID        *int32
	Name      string
	Latitude  string
	Longitude string
	Picture   *string
	User      *RefInput
}

// CityForCreation validates a city creation payload. Creation payloads
// must not carry an id and must name the owning user.
func CityForCreation(in CityInput) (*domain.City, error) {
	if in.ID != nil {
		return nil, domain.NewError(domain.BadRequest, "city id not required")
	}
	if in.User == nil {
		return nil, domain.NewError(domain.BadRequest, "city user required")
	}

	city := normalizeCity(in)
	if err := run(cityRules(city)); err != nil {
		return nil, err
	}

	user, err := UserReference(*in.User)
	if err != nil {
		return nil, err
	}
	city.User = user

	return city, nil
}

// CityForUpdate validates a city update payload. Update payloads must
// carry an id.
func CityForUpdate(in CityInput) (*domain.City, error) {
	if in.ID == nil {
		return nil, domain.NewError(domain.BadRequest, "city id required")
	}

	city := normalizeCity(in)
	city.ID = int64(*in.ID)

	rules := append([]rule{
		{"id", atLeast(city.ID, 1), "city id must be at least 1"},
	}, cityRules(city)...)
	if err := run(rules); err != nil {
		return nil, err
	}

	if in.User != nil {
		user, err := UserReference(*in.User)
		if err != nil {
			return nil, err
		}
		city.User = user
	}

	return city, nil
}

// CityReference validates a nested city reference.
func CityReference(in RefInput) (*domain.City, error) {
	if err := run([]rule{
		{"id", atLeast(int64(in.ID), 1), "city id must be at least 1"},
	}); err != nil {
		return nil, err
	}
	return &domain.City{ID: int64(in.ID)}, nil
}

func normalizeCity(in CityInput) *domain.City {
	return &domain.City{
		Name:      trim(in.Name),
		Latitude:  trim(in.Latitude),
		Longitude: trim(in.Longitude),
		Picture:   trimPtr(in.Picture),
	}
}

// cityRules is the city field rule table, in declaration order.
func cityRules(c *domain.City) []rule {
	return []rule{
		{"name", minLength(c.Name, 1), "name too short"},
		{"name", maxLength(c.Name, 255), "name too long"},
		{"latitude", matches(c.Latitude, latitudePattern), "latitude must be a decimal degree between -90 and 90"},
		{"longitude", matches(c.Longitude, longitudePattern), "longitude must be a decimal degree between -180 and 180"},
		{"picture", optional(c.Picture, maxLength(c.Picture, 255)), "picture too long"},
		{"picture", optional(c.Picture, matches(c.Picture, urlPattern)), "picture must be a valid url"},
	}
}
