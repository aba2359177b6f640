package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/akmonengine/spatial/internal/config"
	"github.com/akmonengine/spatial/matrix"
	"github.com/akmonengine/spatial/vector"
)

type entry struct {
	Key   string
	Value any
}

// report keeps result fields in insertion order for both output formats.
type report []entry

func (r report) add(key string, value any) report {
	return append(r, entry{Key: key, Value: value})
}

type printer struct {
	format    string
	precision int
	w         io.Writer
}

func (p printer) print(r report) error {
	if p.format == config.FormatJSON {
		return p.printJSON(r)
	}
	return p.printText(r)
}

func (p printer) printText(r report) error {
	var sb strings.Builder
	for _, e := range r {
		sb.WriteString(e.Key)
		sb.WriteString(": ")
		sb.WriteString(p.text(p.normalize(e.Value)))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(p.w, sb.String())
	return err
}

func (p printer) printJSON(r report) error {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, e := range r {
		key, err := json.Marshal(e.Key)
		if err != nil {
			return err
		}
		value, err := json.Marshal(p.normalize(e.Value))
		if err != nil {
			return fmt.Errorf("encode %s: %w", e.Key, err)
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(r)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	_, err := p.w.Write(buf.Bytes())
	return err
}

// normalize turns vectors and matrices into plain slices and rounds every float.
func (p printer) normalize(v any) any {
	switch x := v.(type) {
	case float64:
		return p.round(x)
	case vector.Vec3:
		return p.normalize(x.Components())
	case []vector.Vec3:
		out := make([][]float64, len(x))
		for i, vec := range x {
			out[i] = p.normalize(vec.Components()).([]float64)
		}
		return out
	case matrix.Mat3:
		return p.normalize([]vector.Vec3{x.Row(0), x.Row(1), x.Row(2)})
	case []float64:
		out := make([]float64, len(x))
		for i, f := range x {
			out[i] = p.round(f)
		}
		return out
	}
	return v
}

func (p printer) round(f float64) float64 {
	r := scalar.Round(f, p.precision)
	if r == 0 {
		// drop the sign of -0
		return 0
	}
	return r
}

func (p printer) text(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []float64:
		parts := make([]string, len(x))
		for i, f := range x {
			parts[i] = p.text(f)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case [][]float64:
		parts := make([]string, len(x))
		for i, row := range x {
			parts[i] = p.text(row)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprint(v)
}
