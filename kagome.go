package partid

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Source is one location a tokenizer dictionary can be built from.
// Location is "builtin:ipa", "builtin:uni", a local file path, or an
// http(s) URL to a kagome dictionary archive.
type Source struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

func (s Source) String() string {
	if s.Name == "" || s.Name == s.Location {
		return s.Location
	}
	return s.Name + " (" + s.Location + ")"
}

// DefaultSources are tried in order by the default manager.
var DefaultSources = []Source{
	{Name: "ipa", Location: "builtin:ipa"},
	{Name: "uni", Location: "builtin:uni"},
}

// KagomeLibrary builds kagome tokenizers. It is linked into the binary, so it
// is always available.
type KagomeLibrary struct {
	// HTTPClient fetches remote dictionaries; http.DefaultClient when nil.
	HTTPClient *http.Client
}

func (KagomeLibrary) Available() bool { return true }

func (KagomeLibrary) Loaded() <-chan struct{} { return nil }

// Build loads the dictionary at src and wraps a kagome tokenizer around it.
func (l KagomeLibrary) Build(ctx context.Context, src Source) (Tokenizer, error) {
	d, err := l.loadDict(ctx, src.Location)
	if err != nil {
		return nil, err
	}
	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}
	return &kagomeTokenizer{t: t}, nil
}

func (l KagomeLibrary) loadDict(ctx context.Context, location string) (*dict.Dict, error) {
	switch {
	case location == "builtin:ipa":
		return ipa.Dict(), nil
	case location == "builtin:uni":
		return uni.Dict(), nil
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		file, err := l.download(ctx, location)
		if err != nil {
			return nil, err
		}
		return dict.LoadDictFile(file)
	case location == "":
		return nil, fmt.Errorf("empty dictionary location")
	}
	return dict.LoadDictFile(location)
}

// download fetches a remote dictionary into the XDG cache, reusing a
// previous download of the same file name.
func (l KagomeLibrary) download(ctx context.Context, url string) (string, error) {
	target, err := xdg.CacheFile(filepath.Join("partid", "dict", path.Base(url)))
	if err != nil {
		return "", fmt.Errorf("failed to get cache directory: %w", err)
	}
	if _, err := os.Stat(target); err == nil {
		return target, nil
	}

	client := l.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch %s: %s", url, resp.Status)
	}

	tmp := target + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("failed to save %s: %w", url, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return target, os.Rename(tmp, target)
}

type kagomeTokenizer struct {
	t *tokenizer.Tokenizer
}

func (k *kagomeTokenizer) Tokenize(text string) []Morpheme {
	tokens := k.t.Tokenize(text)
	out := make([]Morpheme, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		m := Morpheme{Surface: tok.Surface, POS: tok.POS()}
		if v, ok := tok.Reading(); ok && v != "*" {
			m.Reading = v
		}
		if v, ok := tok.Pronunciation(); ok && v != "*" {
			m.Pronunciation = v
		}
		if v, ok := tok.BaseForm(); ok && v != "*" {
			m.BaseForm = v
		}
		out = append(out, m)
	}
	return out
}
