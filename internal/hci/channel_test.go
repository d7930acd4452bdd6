package hci

import "testing"

func TestDeviceFlags_IsUp(t *testing.T) {
	tests := []struct {
		name  string
		flags DeviceFlags
		want  bool
	}{
		{name: "zero", flags: 0, want: false},
		{name: "up bit set", flags: 1, want: true},
		{name: "only other bits", flags: 0xfe, want: false},
		{name: "up among other bits", flags: 0xff, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.IsUp(); got != tt.want {
				t.Errorf("IsUp() = %v, want %v", got, tt.want)
			}
		})
	}
}
