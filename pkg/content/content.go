// Package content resolves submitted or produced content payloads (URLs,
// data-URLs, filesystem paths, raw bytes, decoded images) into in-memory
// responses, files, or image handles. The schema and binding engine never
// calls into this package; workflow bodies hand control values and results to
// it.
package content

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/rossaai/workflows/pkg/schema"
)

var (
	ErrEmptyPayload       = errors.New("content: payload has no data")
	ErrUnsupportedPayload = errors.New("content: unsupported payload data")
	ErrNotAnImage         = errors.New("content: payload does not decode as an image")
)

// Response is a resolved payload ready to be served or stored.
type Response struct {
	Body      []byte
	MediaType string
}

// Payload couples a content kind with its raw data. Data may be a string
// (http(s) URL, data-URL, filesystem path, or plain text), a byte slice, or a
// decoded image.Image.
type Payload struct {
	Kind schema.ContentKind
	Data any
}

// Image builds an image payload.
func Image(data any) Payload { return Payload{Kind: schema.ContentImage, Data: data} }

// Video builds a video payload.
func Video(data any) Payload { return Payload{Kind: schema.ContentVideo, Data: data} }

// Audio builds an audio payload.
func Audio(data any) Payload { return Payload{Kind: schema.ContentAudio, Data: data} }

// Text builds a text payload.
func Text(data any) Payload { return Payload{Kind: schema.ContentText, Data: data} }

// ThreeD builds a 3-D payload.
func ThreeD(data any) Payload { return Payload{Kind: schema.ContentThreeD, Data: data} }

// Mask builds a mask payload.
func Mask(data any) Payload { return Payload{Kind: schema.ContentMask, Data: data} }

// ToResponse resolves the payload into an in-memory response. URLs are
// fetched with the caller's context, data-URLs are decoded, filesystem paths
// are read, and other strings pass through as plain text.
func (p Payload) ToResponse(ctx context.Context) (Response, error) {
	switch data := p.Data.(type) {
	case nil:
		return Response{}, ErrEmptyPayload
	case []byte:
		return Response{Body: data, MediaType: "application/octet-stream"}, nil
	case image.Image:
		var buf bytes.Buffer
		if err := png.Encode(&buf, data); err != nil {
			return Response{}, fmt.Errorf("content: encode image: %w", err)
		}
		return Response{Body: buf.Bytes(), MediaType: "image/png"}, nil
	case string:
		return resolveString(ctx, data)
	}
	return Response{}, fmt.Errorf("%w: %T", ErrUnsupportedPayload, p.Data)
}

// Save resolves the payload and writes its body to path.
func (p Payload) Save(ctx context.Context, path string) error {
	response, err := p.ToResponse(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, response.Body, 0o644); err != nil {
		return fmt.Errorf("content: save %s: %w", path, err)
	}
	return nil
}

// ToImage resolves the payload and decodes it into an image handle.
func (p Payload) ToImage(ctx context.Context) (image.Image, error) {
	if img, ok := p.Data.(image.Image); ok {
		return img, nil
	}
	response, err := p.ToResponse(ctx)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(response.Body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}
	return img, nil
}

func resolveString(ctx context.Context, data string) (Response, error) {
	switch {
	case strings.HasPrefix(data, "http://"), strings.HasPrefix(data, "https://"):
		return fetchURL(ctx, data)
	case strings.HasPrefix(data, "data:"):
		return decodeDataURL(data)
	}
	if info, err := os.Stat(data); err == nil && !info.IsDir() {
		body, err := os.ReadFile(data)
		if err != nil {
			return Response{}, fmt.Errorf("content: read %s: %w", data, err)
		}
		mediaType := mime.TypeByExtension(filepath.Ext(data))
		if mediaType == "" {
			mediaType = "application/octet-stream"
		}
		return Response{Body: body, MediaType: mediaType}, nil
	}
	return Response{Body: []byte(data), MediaType: "text/plain"}, nil
}

func fetchURL(ctx context.Context, url string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, fmt.Errorf("content: fetch %s: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("content: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Response{}, fmt.Errorf("content: fetch %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("content: fetch %s: %w", url, err)
	}
	mediaType := resp.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return Response{Body: body, MediaType: mediaType}, nil
}

func decodeDataURL(data string) (Response, error) {
	header, encoded, found := strings.Cut(data, ",")
	if !found {
		return Response{}, fmt.Errorf("%w: malformed data URL", ErrUnsupportedPayload)
	}
	meta := strings.TrimPrefix(header, "data:")
	mediaType, _, _ := strings.Cut(meta, ";")
	if mediaType == "" {
		mediaType = "text/plain"
	}
	if strings.Contains(meta, ";base64") {
		body, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return Response{}, fmt.Errorf("content: decode data URL: %w", err)
		}
		return Response{Body: body, MediaType: mediaType}, nil
	}
	return Response{Body: []byte(encoded), MediaType: mediaType}, nil
}
