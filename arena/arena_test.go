package arena

import "testing"

func TestSpans(t *testing.T) {
	a := New(400, 300, 24)

	loX, hiX := a.SpanX()
	if loX != 24 || hiX != 376 {
		t.Errorf("expected X span [24, 376], got [%f, %f]", loX, hiX)
	}

	loY, hiY := a.SpanY()
	if loY != 24 || hiY != 276 {
		t.Errorf("expected Y span [24, 276], got [%f, %f]", loY, hiY)
	}
}

func TestCenter(t *testing.T) {
	a := New(400, 300, 24)

	cx, cy := a.Center()
	if cx != 200 || cy != 150 {
		t.Errorf("expected center (200, 150), got (%f, %f)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	a := New(400, 300, 24)

	testCases := []struct {
		name           string
		x, y           float32
		wantX, wantY   float32
	}{
		{"inside", 200, 150, 200, 150},
		{"past top-left", 10, 10, 24, 24},
		{"past bottom-right", 395, 290, 376, 276},
		{"on boundary", 24, 276, 24, 276},
	}

	for _, tc := range testCases {
		gotX, gotY := a.Clamp(tc.x, tc.y)
		if gotX != tc.wantX || gotY != tc.wantY {
			t.Errorf("%s: Clamp(%f, %f) = (%f, %f), want (%f, %f)",
				tc.name, tc.x, tc.y, gotX, gotY, tc.wantX, tc.wantY)
		}
	}
}

func TestContains(t *testing.T) {
	a := New(400, 300, 24)

	if !a.Contains(200, 150) {
		t.Error("center should be contained")
	}
	if a.Contains(10, 150) {
		t.Error("point inside the padding band should not be contained")
	}
	if !a.Contains(24, 24) {
		t.Error("boundary point should be contained")
	}
}

func TestDegenerateWindowCollapsesToPoint(t *testing.T) {
	// Window smaller than 2x padding: the bug parks at the midpoint
	a := New(30, 20, 24)

	loX, hiX := a.SpanX()
	if loX != hiX {
		t.Errorf("expected collapsed X span, got [%f, %f]", loX, hiX)
	}
	if loX != 15 {
		t.Errorf("expected X park point 15, got %f", loX)
	}

	x, y := a.Clamp(1000, -1000)
	if x != 15 || y != 10 {
		t.Errorf("expected clamp to park point (15, 10), got (%f, %f)", x, y)
	}
}

func TestZeroAreaWindow(t *testing.T) {
	a := New(0, 0, 24)

	x, y := a.Clamp(50, 50)
	if x != 0 || y != 0 {
		t.Errorf("expected clamp to (0, 0), got (%f, %f)", x, y)
	}
}

func TestResizeUpdatesSpans(t *testing.T) {
	a := New(400, 300, 24)
	a.Resize(800, 600)

	_, hiX := a.SpanX()
	if hiX != 776 {
		t.Errorf("expected X max 776 after resize, got %f", hiX)
	}
	_, hiY := a.SpanY()
	if hiY != 576 {
		t.Errorf("expected Y max 576 after resize, got %f", hiY)
	}
}
