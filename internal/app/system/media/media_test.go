package media

import "testing"

func TestValidBase64Image(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"png", "data:image/png;base64,iVBORw0KGgo=", true},
		{"jpeg", "data:image/jpeg;base64,/9j/4AAQ", true},
		{"webp", "data:image/webp;base64,UklGR", true},
		{"svg", "data:image/svg+xml;base64,PHN2Zz4=", true},
		{"plain url", "https://example.com/photo.jpg", false},
		{"wrong mime", "data:application/pdf;base64,JVBERi0=", false},
		{"missing base64 marker", "data:image/png,rawbytes", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidBase64Image(tt.input); got != tt.want {
				t.Errorf("ValidBase64Image(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDeriveHandleFromURL(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{
			"versioned delivery url",
			"https://res.cloudinary.com/demo/image/upload/v1690000000/buildright/projects/site.jpg",
			"buildright/projects/site", true,
		},
		{
			"unversioned",
			"https://res.cloudinary.com/demo/image/upload/buildright/hero.png",
			"buildright/hero", true,
		},
		{
			"no extension",
			"https://res.cloudinary.com/demo/image/upload/buildright/hero",
			"buildright/hero", true,
		},
		{
			"folder starting with v but not a version",
			"https://res.cloudinary.com/demo/image/upload/videos/clip.jpg",
			"videos/clip", true,
		},
		{"no upload marker", "https://example.com/photo.jpg", "", false},
		{"empty after marker", "https://res.cloudinary.com/demo/image/upload/", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeriveHandleFromURL(tt.url)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("DeriveHandleFromURL(%q) = (%q, %v), want (%q, %v)",
					tt.url, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestHandleOrDerive(t *testing.T) {
	if got, ok := HandleOrDerive("stored/handle", "https://res.cloudinary.com/demo/image/upload/other/thing.jpg"); !ok || got != "stored/handle" {
		t.Errorf("HandleOrDerive() = (%q, %v), want the stored handle", got, ok)
	}
	if got, ok := HandleOrDerive("", "https://res.cloudinary.com/demo/image/upload/other/thing.jpg"); !ok || got != "other/thing" {
		t.Errorf("HandleOrDerive() = (%q, %v), want the derived handle", got, ok)
	}
	if _, ok := HandleOrDerive("", "https://example.com/x.jpg"); ok {
		t.Error("HandleOrDerive() with underivable url ok = true, want false")
	}
}
