package partid

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// fakeTokenizer returns canned morphemes per input text.
type fakeTokenizer struct {
	results map[string][]Morpheme
	panics  bool
}

func (f *fakeTokenizer) Tokenize(text string) []Morpheme {
	if f.panics {
		panic("dictionary corrupted")
	}
	if ms, ok := f.results[text]; ok {
		return ms
	}
	var out []Morpheme
	for _, r := range text {
		out = append(out, Morpheme{Surface: string(r), POS: []string{"名詞", "一般"}})
	}
	return out
}

func announcementTokenizer() *fakeTokenizer {
	return &fakeTokenizer{results: map[string][]Morpheme{
		"名古屋行き": {
			{Surface: "名古屋", Reading: "ナゴヤ", POS: []string{"名詞", "固有名詞", "地域", "一般"}},
			{Surface: "行き", Reading: "イキ", POS: []string{"名詞", "接尾", "一般"}},
		},
		"電車": {
			{Surface: "電車", Reading: "デンシャ", POS: []string{"名詞", "一般"}},
		},
		"電車が参ります": {
			{Surface: "電車", Reading: "デンシャ", POS: []string{"名詞", "一般"}},
			{Surface: "が", Reading: "ガ", POS: []string{"助詞", "格助詞", "一般"}},
			{Surface: "参り", Reading: "マイリ", POS: []string{"動詞", "自立"}, BaseForm: "参る"},
			{Surface: "ます", Reading: "マス", POS: []string{"助動詞"}},
		},
		"まもなく": {
			{Surface: "まもなく", Reading: "マモナク", POS: []string{"副詞", "一般"}},
		},
	}}
}

// fakeLibrary records build calls and lets tests control availability.
type fakeLibrary struct {
	mu        sync.Mutex
	available bool
	loaded    chan struct{}
	fail      map[string]bool
	block     chan struct{} // when set, Build waits on it
	tokenizer Tokenizer
	builds    atomic.Int32
	built     []string
}

func (f *fakeLibrary) Available() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.available
}

func (f *fakeLibrary) setAvailable() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.available = true
}

func (f *fakeLibrary) Loaded() <-chan struct{} {
	if f.loaded == nil {
		return nil
	}
	return f.loaded
}

func (f *fakeLibrary) Build(ctx context.Context, src Source) (Tokenizer, error) {
	f.builds.Add(1)
	f.mu.Lock()
	f.built = append(f.built, src.Name)
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	if f.fail[src.Name] {
		return nil, fmt.Errorf("cannot fetch %s", src.Location)
	}
	if f.tokenizer == nil {
		return announcementTokenizer(), nil
	}
	return f.tokenizer, nil
}

func (f *fakeLibrary) builtNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.built...)
}

var testSources = []Source{
	{Name: "primary", Location: "https://cdn.example.org/dict/ipa.dict"},
	{Name: "mirror", Location: "https://mirror.example.org/dict/ipa.dict"},
}
