package puzzlein

import (
	"strconv"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    Info
		wantErr bool
	}{
		{
			name: "prefixed year and day",
			path: "/solutions/y2024/d01.py",
			want: Info{Year: 2024, Day: 1},
		},
		{
			name: "bare year directory",
			path: "/solutions/2024/day05_2.py",
			want: Info{Year: 2024, Day: 5, Part: 2},
		},
		{
			name: "prefixed year with part",
			path: "/solutions/y2024/d05_2.go",
			want: Info{Year: 2024, Day: 5, Part: 2},
		},
		{
			name: "day prefix longer than one letter",
			path: "/solutions/y2015/day25.go",
			want: Info{Year: 2015, Day: 25},
		},
		{
			name: "relative path",
			path: "y2019/d09.go",
			want: Info{Year: 2019, Day: 9},
		},
		{
			name: "no extension",
			path: "/solutions/2020/d17_1",
			want: Info{Year: 2020, Day: 17, Part: 1},
		},
		{
			name:    "garbage after year prefix strip",
			path:    "/solutions/y20a4/d01.go",
			wantErr: true,
		},
		{
			name:    "non-numeric year directory",
			path:    "/solutions/archive/d01.go",
			wantErr: true,
		},
		{
			name:    "no digits in day token",
			path:    "/solutions/y2024/notes.go",
			wantErr: true,
		},
		{
			name:    "non-numeric part suffix",
			path:    "/solutions/y2024/d01_final.go",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("ParsePath(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPaddedDay(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "01"},
		{9, "09"},
		{10, "10"},
		{25, "25"},
		{100, "100"},
	}

	for _, tt := range tests {
		got := Info{Day: tt.day}.PaddedDay()
		if got != tt.want {
			t.Errorf("PaddedDay() for day %d = %q, want %q", tt.day, got, tt.want)
		}
	}
}

// The padded form must convert back to the integer day exactly.
func TestPaddedDayRoundTrip(t *testing.T) {
	for day := 1; day <= 25; day++ {
		info := Info{Year: 2024, Day: day}
		back, err := strconv.Atoi(info.PaddedDay())
		if err != nil {
			t.Fatalf("Atoi(%q) error = %v", info.PaddedDay(), err)
		}
		if back != day {
			t.Errorf("round trip for day %d gave %d", day, back)
		}
	}
}

func TestInfoString(t *testing.T) {
	if got := (Info{Year: 2024, Day: 5}).String(); got != "2024 day 5" {
		t.Errorf("String() = %q", got)
	}
	if got := (Info{Year: 2024, Day: 5, Part: 2}).String(); got != "2024 day 5 part 2" {
		t.Errorf("String() = %q", got)
	}
}
