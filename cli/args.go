package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/ikmath/spatialmath"
)

const componentsPerQuaternion = 4

// parseQuaternions reads count quaternions from args, four components each.
// Every malformed component is reported, not just the first.
func parseQuaternions(args []string, count int) ([]spatialmath.Quaternion, error) {
	if len(args) != count*componentsPerQuaternion {
		return nil, errors.Errorf("expected %d components, got %d", count*componentsPerQuaternion, len(args))
	}

	values := make([]float32, len(args))
	var err error
	for idx, arg := range args {
		v, parseErr := strconv.ParseFloat(strings.TrimSpace(arg), 32)
		if parseErr != nil {
			err = multierr.Append(err, errors.Wrapf(parseErr, "component %d", idx+1))
			continue
		}
		values[idx] = float32(v)
	}
	if err != nil {
		return nil, err
	}

	quats := make([]spatialmath.Quaternion, 0, count)
	for idx := 0; idx < len(values); idx += componentsPerQuaternion {
		quats = append(quats, spatialmath.NewQuaternion(values[idx], values[idx+1], values[idx+2], values[idx+3]))
	}
	return quats, nil
}

// parseAxis reads a quaternion written as "r,i,j,k".
func parseAxis(s string) (spatialmath.Quaternion, error) {
	quats, err := parseQuaternions(strings.Split(s, ","), 1)
	if err != nil {
		return spatialmath.Quaternion{}, errors.Wrapf(err, "invalid axis %q", s)
	}
	return quats[0], nil
}

func formatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func formatFloat64(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
