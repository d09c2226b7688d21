package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

const (
	filePrefix = "roteiro_"
	fileExt    = ".json"

	createdAtLayout = "2006-01-02T15:04:05.000000"
	fileTimeLayout  = "20060102_150405"
)

func (s *implStore) Dir() string {
	return s.dir
}

// Save builds the run record and writes it. Two saves within the same second
// share a file name; the later one wins.
func (s *implStore) Save(meta models.RunMeta, scripts models.Scripts, texts []string, start int) (string, error) {
	now := s.now()
	record := BuildRecord(now.Format(createdAtLayout), meta, scripts, texts, start)

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create runs dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(record); err != nil {
		return "", fmt.Errorf("encode run record: %w", err)
	}

	path := filepath.Join(s.dir, filePrefix+now.Format(fileTimeLayout)+fileExt)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write run record: %w", err)
	}

	return path, nil
}

// BuildRecord derives each slide's topic from the first line of its source
// text, or TopicNotFound when the slide is outside texts.
func BuildRecord(createdAt string, meta models.RunMeta, scripts models.Scripts, texts []string, start int) models.RunRecord {
	record := models.RunRecord{
		CreatedAt: createdAt,
		RunMeta:   meta,
		Slides:    make(models.SlideEntries, 0, len(scripts)),
	}

	for _, sc := range scripts {
		topic := models.TopicNotFound
		if idx := sc.Slide - start; sc.Label == "" && idx >= 0 && idx < len(texts) {
			topic = strings.SplitN(texts[idx], "\n", 2)[0]
		}
		record.Slides = append(record.Slides, models.SlideEntry{
			Label:  models.SlideLabel(sc.Key()),
			Topic:  strings.TrimSpace(topic),
			Script: sc.Text,
		})
	}

	return record
}

func (s *implStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read runs dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileExt) {
			continue
		}
		names = append(names, name)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

func (s *implStore) Open(name string) (models.RunRecord, error) {
	if name == "" || filepath.Base(name) != name {
		return models.RunRecord{}, fmt.Errorf("%w: bad run file name %q", models.ErrInvalidInput, name)
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return models.RunRecord{}, fmt.Errorf("open run file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a run record from r. Malformed JSON or a missing "slides"
// object is an ErrParse.
func Decode(r io.Reader) (models.RunRecord, error) {
	var record models.RunRecord
	if err := json.NewDecoder(r).Decode(&record); err != nil {
		if errors.Is(err, models.ErrParse) {
			return models.RunRecord{}, err
		}
		return models.RunRecord{}, fmt.Errorf("%w: %w", models.ErrParse, err)
	}
	if record.Slides == nil {
		return models.RunRecord{}, fmt.Errorf("%w: missing slides", models.ErrParse)
	}
	return record, nil
}
