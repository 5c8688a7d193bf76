package tsgl

import "testing"

func TestTransform_Apply(t *testing.T) {
	tests := []struct {
		name     string
		tr       Transform
		in, want [3]float32
	}{
		{"identity", Transform{}, [3]float32{1, 2, 3}, [3]float32{1, 2, 3}},
		{"translate", Transform{X: 10, Y: -1, Z: 2}, [3]float32{1, 2, 3}, [3]float32{11, 1, 5}},
		{"yaw", Transform{Yaw: 90}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{"pitch", Transform{Pitch: 90}, [3]float32{0, 1, 0}, [3]float32{0, 0, 1}},
		{"roll", Transform{Roll: 90}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{"roll then translate", Transform{X: 5, Roll: 180}, [3]float32{1, 0, 0}, [3]float32{4, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, z := tt.tr.Apply(tt.in[0], tt.in[1], tt.in[2])
			if !near(x, tt.want[0]) || !near(y, tt.want[1]) || !near(z, tt.want[2]) {
				t.Errorf("Apply(%v) = (%v, %v, %v), want %v", tt.in, x, y, z, tt.want)
			}
		})
	}
}
