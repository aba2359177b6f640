package spatial

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/akmonengine/spatial/rotation"
	"github.com/akmonengine/spatial/transform"
	"github.com/akmonengine/spatial/vector"
)

func TestTask_VisitsEveryElementOnce(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		workers int
	}{
		{"empty", 0, 4},
		{"fewer elements than workers", 3, 8},
		{"single worker", 10, 1},
		{"uneven chunks", 17, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]int, tt.size)
			visits := make([]int32, tt.size)
			var calls atomic.Int32

			task(tt.workers, data, func(i int, _ int) {
				atomic.AddInt32(&visits[i], 1)
				calls.Add(1)
			})

			if int(calls.Load()) != tt.size {
				t.Errorf("calls = %d, want %d", calls.Load(), tt.size)
			}
			for i, v := range visits {
				if v != 1 {
					t.Errorf("element %d visited %d times", i, v)
				}
			}
		})
	}
}

func TestToWorldAll_MatchesSequential(t *testing.T) {
	root := transform.WorldFromEuler(rotation.Euler(0.3, -0.8, 1.2), vector.V3(1, -2, 3))
	child, err := transform.LocalFromPosition(root, vector.V3(0, 4, 0))
	if err != nil {
		t.Fatalf("LocalFromPosition() error = %v", err)
	}

	points := make([]vector.Vec3, 101)
	for i := range points {
		f := float64(i)
		points[i] = vector.V3(f, math.Sin(f), -f/2)
	}

	for _, workers := range []int{-1, 0, 1, 3, 16} {
		world := ToWorldAll(child, points, workers)
		if len(world) != len(points) {
			t.Fatalf("workers=%d: len = %d, want %d", workers, len(world), len(points))
		}
		for i, p := range points {
			if !world[i].Equal(child.ToWorld(p)) {
				t.Errorf("workers=%d: point %d = %v, want %v", workers, i, world[i], child.ToWorld(p))
			}
		}

		back := ToLocalAll(child, world, workers)
		for i, p := range points {
			if !back[i].ApproxEqual(p, 1e-9) {
				t.Errorf("workers=%d: round trip %d = %v, want %v", workers, i, back[i], p)
			}
		}
	}
}
