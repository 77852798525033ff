package validate

import "cityguide/internal/domain"

// PoiInput is the raw point-of-interest payload as deserialized by the
// transport layer.
type PoiInput struct {
	ID        *int32
	Name      string
	Address   string
	Latitude  string
	Longitude string
	Picture   *string
	City      *RefInput
	Type      *RefInput
	Tags      *[]RefInput
}

// PoiForCreation validates a poi creation payload. A poi always
// references a city and a type.
func PoiForCreation(in PoiInput) (*domain.Poi, error) {
	if in.ID != nil {
		return nil, domain.NewError(domain.BadRequest, "poi id not required")
	}
	return validatePoi(in, nil)
}

// PoiForUpdate validates a poi update payload.
func PoiForUpdate(in PoiInput) (*domain.Poi, error) {
	if in.ID == nil {
		return nil, domain.NewError(domain.BadRequest, "poi id required")
	}
	id := int64(*in.ID)
	return validatePoi(in, &id)
}

func validatePoi(in PoiInput, id *int64) (*domain.Poi, error) {
	if in.City == nil {
		return nil, domain.NewError(domain.BadRequest, "poi city required")
	}
	if in.Type == nil {
		return nil, domain.NewError(domain.BadRequest, "poi type required")
	}

	poi := normalizePoi(in)

	rules := poiRules(poi)
	if id != nil {
		poi.ID = *id
		rules = append([]rule{
			{"id", atLeast(*id, 1), "poi id must be at least 1"},
		}, rules...)
	}
	if err := run(rules); err != nil {
		return nil, err
	}

	city, err := CityReference(*in.City)
	if err != nil {
		return nil, err
	}
	poi.City = city

	typ, err := TypeReference(*in.Type)
	if err != nil {
		return nil, err
	}
	poi.Type = typ

	tags, err := TagReferences(in.Tags)
	if err != nil {
		return nil, err
	}
	poi.Tags = tags

	return poi, nil
}

func normalizePoi(in PoiInput) *domain.Poi {
	return &domain.Poi{
		Name:      trim(in.Name),
		Address:   trim(in.Address),
		Latitude:  trim(in.Latitude),
		Longitude: trim(in.Longitude),
		Picture:   trimPtr(in.Picture),
	}
}

// poiRules is the poi field rule table, in declaration order.
func poiRules(p *domain.Poi) []rule {
	return []rule{
		{"name", minLength(p.Name, 1), "name too short"},
		{"name", maxLength(p.Name, 255), "name too long"},
		{"address", minLength(p.Address, 1), "address too short"},
		{"address", maxLength(p.Address, 255), "address too long"},
		{"latitude", matches(p.Latitude, latitudePattern), "latitude must be a decimal degree between -90 and 90"},
		{"longitude", matches(p.Longitude, longitudePattern), "longitude must be a decimal degree between -180 and 180"},
		{"picture", optional(p.Picture, maxLength(p.Picture, 255)), "picture too long"},
	}
}
