package storage

import "testing"

func TestObjectURL(t *testing.T) {
	cases := []struct {
		cfg  GCSConfig
		want string
	}{
		{GCSConfig{Bucket: "ignitai"}, "gs://ignitai/uploads/1-2-cv.pdf"},
		{GCSConfig{Bucket: "ignitai", Public: true}, "https://storage.googleapis.com/ignitai/uploads/1-2-cv.pdf"},
		{GCSConfig{Bucket: "ignitai", Public: true, BaseURL: "https://cdn.example.com/"}, "https://cdn.example.com/uploads/1-2-cv.pdf"},
	}
	for _, c := range cases {
		if got := objectURL(c.cfg, "uploads/1-2-cv.pdf"); got != c.want {
			t.Errorf("objectURL(%+v) = %q, want %q", c.cfg, got, c.want)
		}
	}
}

func TestContentDisposition(t *testing.T) {
	if got := contentDisposition("image/png", "1-2-me.png"); got != "inline" {
		t.Errorf("image disposition = %q", got)
	}
	if got := contentDisposition("application/pdf", "1-2-cv.pdf"); got != `attachment; filename="1-2-cv.pdf"` {
		t.Errorf("pdf disposition = %q", got)
	}
}
