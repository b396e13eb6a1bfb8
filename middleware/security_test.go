package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func maxBodyProbe(t *testing.T, size int) error {
	t.Helper()
	var readErr error
	handler := MaxBodyMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.Copy(io.Discard, r.Body)
	}))

	body := bytes.NewReader(make([]byte, size))
	r := httptest.NewRequest(http.MethodPost, "/users/profile/avatar", body)
	handler.ServeHTTP(httptest.NewRecorder(), r)
	return readErr
}

func TestMaxBody_DefaultAdmitsAvatarUpload(t *testing.T) {
	// a 5 MB file plus multipart framing must fit under the default cap
	if err := maxBodyProbe(t, 5<<20+64<<10); err != nil {
		t.Fatalf("avatar-sized body rejected: %v", err)
	}
}

func TestMaxBody_DefaultRejectsOversizedBody(t *testing.T) {
	if err := maxBodyProbe(t, 6<<20+1); err == nil {
		t.Fatal("body over the default cap was read fully")
	}
}

func TestMaxBody_EnvOverride(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "1024")
	if err := maxBodyProbe(t, 2048); err == nil {
		t.Fatal("body over the configured cap was read fully")
	}
	if err := maxBodyProbe(t, 512); err != nil {
		t.Fatalf("body under the configured cap rejected: %v", err)
	}
}
