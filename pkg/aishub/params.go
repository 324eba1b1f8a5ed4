package aishub

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance; validator.Validate caches struct metadata and
// is safe for concurrent use.
var validate = validator.New()

// Query is one of the three request intents accepted by the client:
// VesselQuery, AreaQuery, or AllVesselsQuery.
type Query interface {
	queryParams() (url.Values, error)
}

// VesselQuery requests a single vessel by identifier. Exactly one of MMSI
// or IMO must be set; zero means absent.
type VesselQuery struct {
	MMSI int
	IMO  int
}

func (q VesselQuery) queryParams() (url.Values, error) {
	params := url.Values{}

	switch {
	case q.MMSI != 0 && q.IMO != 0:
		return nil, NewValidationError("missing ship identifier: set exactly one of mmsi or imo, not both",
			map[string]string{"mmsi": "excluded_with", "imo": "excluded_with"})
	case q.MMSI != 0:
		params.Set("mmsi", strconv.Itoa(q.MMSI))
	case q.IMO != 0:
		params.Set("imo", strconv.Itoa(q.IMO))
	default:
		return nil, NewValidationError("missing ship identifier: one of mmsi or imo is required",
			map[string]string{"mmsi": "required_without", "imo": "required_without"})
	}

	return params, nil
}

// AreaQuery requests every vessel inside a geographic bounding box.
type AreaQuery struct {
	LatMin float64 `validate:"gte=-90,lte=90,ltefield=LatMax"`
	LatMax float64 `validate:"gte=-90,lte=90"`
	LonMin float64 `validate:"gte=-180,lte=180,ltefield=LonMax"`
	LonMax float64 `validate:"gte=-180,lte=180"`
}

// DefaultArea returns the full-globe bounding box, the provider's default
// when no bounds are given.
func DefaultArea() AreaQuery {
	return AreaQuery{
		LatMin: -90,
		LatMax: 90,
		LonMin: -180,
		LonMax: 180,
	}
}

func (q AreaQuery) queryParams() (url.Values, error) {
	if err := validate.Struct(q); err != nil {
		fields := make(map[string]string)
		var validatorErrs validator.ValidationErrors
		if errors.As(err, &validatorErrs) {
			for _, validatorErr := range validatorErrs {
				fields[strings.ToLower(validatorErr.Field())] = validatorErr.Tag()
			}
		}

		return nil, NewValidationError("invalid bounding box: latitudes must satisfy -90 <= latmin <= latmax <= 90, "+
			"longitudes -180 <= lonmin <= lonmax <= 180", fields)
	}

	params := url.Values{}
	params.Set("latmin", formatCoord(q.LatMin))
	params.Set("latmax", formatCoord(q.LatMax))
	params.Set("lonmin", formatCoord(q.LonMin))
	params.Set("lonmax", formatCoord(q.LonMax))

	return params, nil
}

// AllVesselsQuery requests every vessel visible to the account.
type AllVesselsQuery struct{}

func (AllVesselsQuery) queryParams() (url.Values, error) {
	return url.Values{}, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildParams merges the client configuration with a query intent into the
// flat parameter set the web service expects. It validates both inputs and
// performs no I/O; a *ValidationError here always precedes any network call.
func BuildParams(cfg Config, query Query) (url.Values, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	extra, err := query.queryParams()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("username", cfg.Username)
	params.Set("format", strconv.Itoa(int(cfg.Format)))
	params.Set("output", string(cfg.Output))
	params.Set("compress", strconv.Itoa(int(cfg.Compress)))
	for key, values := range extra {
		for _, value := range values {
			params.Add(key, value)
		}
	}

	return params, nil
}
