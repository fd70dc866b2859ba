package pixbuf

import (
	"errors"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		width         int
		height        int
		elem          ElementType
		channels      int
		wantErr       error
		wantPixelSize int
	}{
		{"gray uint8", 10, 5, Uint8, 1, nil, 1},
		{"rgb uint8 padded", 10, 5, Uint8, 3, nil, 4},
		{"rgba uint8", 10, 5, Uint8, 4, nil, 4},
		{"two channel uint8", 10, 5, Uint8, 2, nil, 4},
		{"int32", 3, 3, Int32, 1, nil, 4},
		{"float32 rgb", 3, 3, Float32, 3, nil, 12},
		{"1x1 minimum", 1, 1, Uint8, 1, nil, 1},
		{"zero width", 0, 5, Uint8, 1, ErrInvalidDimensions, 0},
		{"zero height", 5, 0, Uint8, 1, ErrInvalidDimensions, 0},
		{"negative width", -1, 5, Uint8, 1, ErrInvalidDimensions, 0},
		{"invalid type", 5, 5, ElementType(9), 1, ErrUnsupportedElementType, 0},
		{"zero channels", 5, 5, Uint8, 0, ErrInvalidChannels, 0},
		{"too many channels", 5, 5, Uint8, 5, ErrInvalidChannels, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.width, tt.height, tt.elem, tt.channels)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if b.Width() != tt.width || b.Height() != tt.height {
				t.Errorf("Bounds() = %dx%d, want %dx%d", b.Width(), b.Height(), tt.width, tt.height)
			}
			if b.ElementType() != tt.elem {
				t.Errorf("ElementType() = %v, want %v", b.ElementType(), tt.elem)
			}
			if b.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", b.Channels(), tt.channels)
			}
			if b.PixelSize() != tt.wantPixelSize {
				t.Errorf("PixelSize() = %d, want %d", b.PixelSize(), tt.wantPixelSize)
			}
			if b.Stride() != tt.width*tt.wantPixelSize {
				t.Errorf("Stride() = %d, want %d", b.Stride(), tt.width*tt.wantPixelSize)
			}
			if b.ByteSize() != b.Stride()*tt.height {
				t.Errorf("ByteSize() = %d, want %d", b.ByteSize(), b.Stride()*tt.height)
			}
			if b.Mode() != ModeNone {
				t.Errorf("Mode() = %v, want None", b.Mode())
			}
		})
	}
}

func TestNewWithStride(t *testing.T) {
	tests := []struct {
		name    string
		elem    ElementType
		stride  int
		wantErr error
	}{
		{"minimum stride", Uint8, 40, nil},
		{"padded stride", Uint8, 64, nil},
		{"odd padding uint8", Uint8, 41, nil},
		{"stride too small", Uint8, 39, ErrInvalidStride},
		{"int32 aligned", Int32, 48, nil},
		{"int32 unaligned", Int32, 42, ErrInvalidStride},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channels := 4
			if tt.elem != Uint8 {
				channels = 1
			}
			b, err := NewWithStride(10, 3, tt.elem, channels, tt.stride)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewWithStride() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if b.Stride() != tt.stride {
				t.Errorf("Stride() = %d, want %d", b.Stride(), tt.stride)
			}
			row, err := b.Row(2)
			if err != nil {
				t.Fatalf("Row(2) error = %v", err)
			}
			if len(row) != 10*b.PixelSize() {
				t.Errorf("len(Row(2)) = %d, want %d", len(row), 10*b.PixelSize())
			}
		})
	}
}

func TestNewMode(t *testing.T) {
	tests := []struct {
		mode          Mode
		wantElem      ElementType
		wantChannels  int
		wantPixelSize int
	}{
		{Mode1, Uint8, 1, 1},
		{ModeL, Uint8, 1, 1},
		{ModeP, Uint8, 1, 1},
		{ModeI, Int32, 1, 4},
		{ModeF, Float32, 1, 4},
		{ModeRGB, Uint8, 3, 4},
		{ModeRGBA, Uint8, 4, 4},
		{ModeCMYK, Uint8, 4, 4},
		{ModeYCbCr, Uint8, 3, 4},
		{ModeLAB, Uint8, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			b, err := NewMode(tt.mode, 7, 3)
			if err != nil {
				t.Fatalf("NewMode() error = %v", err)
			}
			if b.Mode() != tt.mode {
				t.Errorf("Mode() = %v, want %v", b.Mode(), tt.mode)
			}
			if b.ElementType() != tt.wantElem {
				t.Errorf("ElementType() = %v, want %v", b.ElementType(), tt.wantElem)
			}
			if b.Channels() != tt.wantChannels {
				t.Errorf("Channels() = %d, want %d", b.Channels(), tt.wantChannels)
			}
			if b.PixelSize() != tt.wantPixelSize {
				t.Errorf("PixelSize() = %d, want %d", b.PixelSize(), tt.wantPixelSize)
			}
		})
	}

	if _, err := NewMode(ModeNone, 1, 1); !errors.Is(err, ErrUnsupportedMode) {
		t.Errorf("NewMode(ModeNone) error = %v, want %v", err, ErrUnsupportedMode)
	}
	if _, err := NewMode(ModeL, 0, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewMode(0x1) error = %v, want %v", err, ErrInvalidDimensions)
	}
}

func TestRowOutOfRange(t *testing.T) {
	b, _ := New(4, 3, Uint8, 1)
	for _, y := range []int{-1, 3, 100} {
		if _, err := b.Row(y); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Row(%d) error = %v, want %v", y, err, ErrOutOfRange)
		}
	}
	if _, err := b.Row(2); err != nil {
		t.Errorf("Row(2) error = %v", err)
	}
}

func TestTypedRowViews(t *testing.T) {
	u8, _ := New(5, 2, Uint8, 4)
	i32, _ := New(5, 2, Int32, 1)
	f32, _ := New(5, 2, Float32, 2)

	tests := []struct {
		name    string
		buf     *Buffer
		wantU8  int // expected length, -1 when unavailable
		wantI32 int
		wantF32 int
	}{
		{"uint8 rgba", u8, 20, -1, -1},
		{"int32", i32, -1, 5, -1},
		{"float32 2ch", f32, -1, -1, 10},
	}

	check := func(t *testing.T, what string, n int, ok bool, want int) {
		t.Helper()
		if want < 0 {
			if ok {
				t.Errorf("%s available, want unavailable", what)
			}
			return
		}
		if !ok {
			t.Errorf("%s unavailable, want %d elements", what, want)
			return
		}
		if n != want {
			t.Errorf("%s len = %d, want %d", what, n, want)
		}
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r8, ok := tt.buf.RowUint8(1)
			check(t, "RowUint8", len(r8), ok, tt.wantU8)
			r32, ok := tt.buf.RowInt32(1)
			check(t, "RowInt32", len(r32), ok, tt.wantI32)
			rf, ok := tt.buf.RowFloat32(1)
			check(t, "RowFloat32", len(rf), ok, tt.wantF32)

			if _, ok := tt.buf.RowUint8(2); ok {
				t.Error("RowUint8(2) available past the last row")
			}
			if _, ok := tt.buf.RowInt32(-1); ok {
				t.Error("RowInt32(-1) available")
			}
		})
	}
}

func TestRowBytesViewTypedStorage(t *testing.T) {
	b, _ := New(3, 2, Int32, 1)
	row, _ := b.RowInt32(1)
	row[2] = 0x01020304

	raw, err := b.Row(1)
	if err != nil {
		t.Fatalf("Row(1) error = %v", err)
	}
	if len(raw) != 12 {
		t.Fatalf("len(Row(1)) = %d, want 12", len(raw))
	}
	// Native byte order: the bytes must contain the value in some order.
	sum := 0
	for _, v := range raw[8:12] {
		sum += int(v)
	}
	if sum != 1+2+3+4 {
		t.Errorf("raw bytes of element = %v, want a permutation of 1..4", raw[8:12])
	}
}

func TestAtSetAt(t *testing.T) {
	tests := []struct {
		name string
		elem ElementType
		in   float64
		want float64
	}{
		{"uint8 exact", Uint8, 42, 42},
		{"uint8 half up", Uint8, 2.5, 3},
		{"uint8 below half", Uint8, 2.49, 2},
		{"uint8 clamp high", Uint8, 300, 255},
		{"uint8 clamp low", Uint8, -4, 0},
		{"int32 half even down", Int32, 2.5, 2},
		{"int32 half even up", Int32, 3.5, 4},
		{"int32 negative", Int32, -7.2, -7},
		{"int32 clamp", Int32, 1e12, math.MaxInt32},
		{"int32 clamp low", Int32, -1e12, math.MinInt32},
		{"float32 passthrough", Float32, -1.25, -1.25},
		{"float32 large", Float32, 1e6, 1e6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := New(2, 2, tt.elem, 1)
			if err := b.SetAt(1, 1, 0, tt.in); err != nil {
				t.Fatalf("SetAt() error = %v", err)
			}
			got, err := b.At(1, 1, 0)
			if err != nil {
				t.Fatalf("At() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("At() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAtOutOfRange(t *testing.T) {
	b, _ := New(2, 2, Uint8, 3)
	coords := [][3]int{{-1, 0, 0}, {2, 0, 0}, {0, 2, 0}, {0, 0, 3}, {0, 0, -1}}
	for _, c := range coords {
		if _, err := b.At(c[0], c[1], c[2]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At%v error = %v, want %v", c, err, ErrOutOfRange)
		}
		if err := b.SetAt(c[0], c[1], c[2], 1); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetAt%v error = %v, want %v", c, err, ErrOutOfRange)
		}
	}
}

func TestPixel(t *testing.T) {
	b, _ := NewMode(ModeRGB, 3, 2)
	_ = b.SetAt(2, 1, 0, 10)
	_ = b.SetAt(2, 1, 1, 20)
	_ = b.SetAt(2, 1, 2, 30)

	px, err := b.Pixel(2, 1)
	if err != nil {
		t.Fatalf("Pixel() error = %v", err)
	}
	want := []byte{10, 20, 30, 0}
	for i := range want {
		if px[i] != want[i] {
			t.Errorf("Pixel()[%d] = %d, want %d", i, px[i], want[i])
		}
	}
	if _, err := b.Pixel(3, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Pixel(3, 0) error = %v, want %v", err, ErrOutOfRange)
	}
}

func TestFill(t *testing.T) {
	b, _ := New(3, 3, Uint8, 3)
	if err := b.Fill(1, 2, 3); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	for y := range 3 {
		for x := range 3 {
			for c := range 3 {
				v, _ := b.At(x, y, c)
				if v != float64(c+1) {
					t.Fatalf("At(%d,%d,%d) = %v, want %d", x, y, c, v, c+1)
				}
			}
		}
	}
	if err := b.Fill(1, 2); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("Fill(2 values) error = %v, want %v", err, ErrInvalidChannels)
	}
	if err := b.Fill(9); err != nil {
		t.Fatalf("Fill(single) error = %v", err)
	}
	if v, _ := b.At(2, 2, 2); v != 9 {
		t.Errorf("At(2,2,2) = %v after Fill(9)", v)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, _ := New(4, 4, Float32, 1)
	_ = b.SetAt(0, 0, 0, 1.5)

	c := b.Clone()
	if !c.Equal(b) {
		t.Fatal("Clone() not equal to original")
	}
	_ = c.SetAt(0, 0, 0, 2.5)
	if v, _ := b.At(0, 0, 0); v != 1.5 {
		t.Errorf("original modified through clone: %v", v)
	}
	if c.Equal(b) {
		t.Error("Equal() = true after modifying clone")
	}
}

func TestEqualIgnoresLayoutPadding(t *testing.T) {
	a, _ := New(3, 2, Uint8, 1)
	b, _ := NewWithStride(3, 2, Uint8, 1, 8)
	_ = a.Fill(7)
	_ = b.Fill(7)
	if !a.Equal(b) {
		t.Error("Equal() = false for same values with different stride")
	}
	c, _ := New(3, 2, Int32, 1)
	if a.Equal(c) {
		t.Error("Equal() = true across element types")
	}
	if a.Equal(nil) {
		t.Error("Equal(nil) = true")
	}
}

func TestClear(t *testing.T) {
	b, _ := New(2, 2, Int32, 1)
	_ = b.Fill(5)
	b.Clear()
	for y := range 2 {
		row, _ := b.RowInt32(y)
		for _, v := range row {
			if v != 0 {
				t.Fatalf("value %d after Clear()", v)
			}
		}
	}
}

func TestReleaseUnpooled(t *testing.T) {
	b, _ := New(2, 2, Uint8, 1)
	b.Release()
	if _, err := b.Row(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Row() after Release error = %v, want %v", err, ErrOutOfRange)
	}
	if _, ok := b.RowUint8(0); ok {
		t.Error("RowUint8() available after Release")
	}
	if _, err := b.At(0, 0, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("At() after Release error = %v, want %v", err, ErrOutOfRange)
	}

	var nilBuf *Buffer
	nilBuf.Release() // must not panic
}

func TestPixelSizeRule(t *testing.T) {
	tests := []struct {
		elem     ElementType
		channels int
		want     int
	}{
		{Uint8, 1, 1},
		{Uint8, 2, 4},
		{Uint8, 3, 4},
		{Uint8, 4, 4},
		{Int32, 1, 4},
		{Int32, 3, 12},
		{Float32, 4, 16},
		{Uint8, 0, 0},
		{ElementType(7), 1, 0},
	}
	for _, tt := range tests {
		if got := PixelSize(tt.elem, tt.channels); got != tt.want {
			t.Errorf("PixelSize(%v, %d) = %d, want %d", tt.elem, tt.channels, got, tt.want)
		}
	}
}

func TestElementTypeString(t *testing.T) {
	tests := []struct {
		elem ElementType
		want string
		size int
	}{
		{Uint8, "Uint8", 1},
		{Int32, "Int32", 4},
		{Float32, "Float32", 4},
		{ElementType(3), "Unknown", 0},
	}
	for _, tt := range tests {
		if got := tt.elem.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.elem.Size(); got != tt.size {
			t.Errorf("%v.Size() = %d, want %d", tt.elem, got, tt.size)
		}
	}
}

func TestClampHelpers(t *testing.T) {
	if got := ClampUint8(math.NaN()); got != 0 {
		t.Errorf("ClampUint8(NaN) = %d, want 0", got)
	}
	if got := ClampUint8(254.5); got != 255 {
		t.Errorf("ClampUint8(254.5) = %d, want 255", got)
	}
	if got := ClampInt32(math.NaN()); got != 0 {
		t.Errorf("ClampInt32(NaN) = %d, want 0", got)
	}
	if got := ClampInt32(-0.5); got != 0 {
		t.Errorf("ClampInt32(-0.5) = %d, want 0", got)
	}
	if got := ClampInt32(-1.5); got != -2 {
		t.Errorf("ClampInt32(-1.5) = %d, want -2", got)
	}
}
