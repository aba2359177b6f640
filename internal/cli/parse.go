package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akmonengine/spatial/rotation"
	"github.com/akmonengine/spatial/vector"
)

// parseVec3 reads "x,y,z".
func parseVec3(s string) (vector.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vector.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var v vector.Vec3
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return vector.Vec3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		v[i] = f
	}
	return v, nil
}

type frameArg struct {
	angles   rotation.EulerAngles
	position vector.Vec3
}

// parseFrame reads "pitch,yaw,roll@x,y,z"; the position part is optional.
// Angles are converted with toRadians.
func parseFrame(s string, toRadians func(float64) float64) (frameArg, error) {
	anglePart, positionPart, hasPosition := strings.Cut(s, "@")

	a, err := parseVec3(anglePart)
	if err != nil {
		return frameArg{}, fmt.Errorf("frame %q angles: %w", s, err)
	}
	f := frameArg{
		angles: rotation.Euler(toRadians(a.X()), toRadians(a.Y()), toRadians(a.Z())),
	}
	if hasPosition {
		if f.position, err = parseVec3(positionPart); err != nil {
			return frameArg{}, fmt.Errorf("frame %q position: %w", s, err)
		}
	}
	return f, nil
}
