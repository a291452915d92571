package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecognizeSuccess(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody recognizeRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(recognizeResponse{
			Text:       "# Invoice\nTotal: $500",
			Pages:      []Page{{Number: 1, Width: 612, Height: 792, Regions: []Region{{Label: "title", Text: "Invoice"}}}},
			PageCount:  1,
			Confidence: 0.92,
		})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"}, nil)
	res, err := c.Recognize(context.Background(), Request{
		FileURL:  "https://files.local/a.pdf",
		FileType: "PDF",
	})
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}

	if gotPath != "/recognize" {
		t.Errorf("path = %q, want /recognize", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotBody.FileURL != "https://files.local/a.pdf" {
		t.Errorf("request file_url = %q", gotBody.FileURL)
	}
	if res.Text != "# Invoice\nTotal: $500" {
		t.Errorf("text = %q", res.Text)
	}
	if res.PageCount != 1 || len(res.Pages) != 1 {
		t.Errorf("pages = %d/%d, want 1/1", res.PageCount, len(res.Pages))
	}
	if res.Confidence != 0.92 {
		t.Errorf("confidence = %v", res.Confidence)
	}
}

func TestRecognizeInlineContentIsBase64(t *testing.T) {
	var gotBody recognizeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(recognizeResponse{Text: "hello", PageCount: 1})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	if _, err := c.Recognize(context.Background(), Request{Content: []byte("raw bytes"), FileType: "TXT"}); err != nil {
		t.Fatalf("Recognize: %v", err)
	}

	want := base64.StdEncoding.EncodeToString([]byte("raw bytes"))
	if gotBody.Content != want {
		t.Errorf("content = %q, want base64 %q", gotBody.Content, want)
	}
}

func TestRecognizeMissingFileRef(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://unused"}, nil)
	_, err := c.Recognize(context.Background(), Request{})
	if !errors.Is(err, ErrMissingFileRef) {
		t.Fatalf("err = %v, want ErrMissingFileRef", err)
	}
}

func TestRecognizeRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(recognizeResponse{Error: "unsupported file format"})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Recognize(context.Background(), Request{FileURL: "https://files.local/a.bin"})
	if !errors.Is(err, ErrRecognitionFailed) {
		t.Fatalf("err = %v, want ErrRecognitionFailed", err)
	}
}

func TestRecognizeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Recognize(context.Background(), Request{FileURL: "https://files.local/a.pdf"})
	if !errors.Is(err, ErrRecognitionFailed) {
		t.Fatalf("err = %v, want ErrRecognitionFailed", err)
	}
}

func TestRecognizeEmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(recognizeResponse{Text: "   \n", PageCount: 1})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Recognize(context.Background(), Request{FileURL: "https://files.local/blank.pdf"})
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("err = %v, want ErrEmptyDocument", err)
	}
}

func TestRecognizePageCountFallsBackToPagesLen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(recognizeResponse{
			Text:  "two pages",
			Pages: []Page{{Number: 1}, {Number: 2}},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	res, err := c.Recognize(context.Background(), Request{FileURL: "https://files.local/a.pdf"})
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if res.PageCount != 2 {
		t.Errorf("page count = %d, want 2 from pages length", res.PageCount)
	}
}
