package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TopicNotFound is stored when a slide's source text is unavailable.
const TopicNotFound = "Tema não encontrado"

// RunMeta describes the source of a run.
type RunMeta struct {
	SourceName   string `json:"nome_arquivo_origem"`
	TotalPages   int    `json:"total_paginas_pdf"`
	StartPage    int    `json:"pagina_inicio"`
	EndPage      int    `json:"pagina_fim"`
	TotalMinutes int    `json:"tempo_total_estimado_minutos"`
}

// RunRecord is the persisted snapshot of one generation run.
type RunRecord struct {
	CreatedAt string `json:"criado_em"`
	RunMeta
	Slides SlideEntries `json:"slides"`
}

// SlideEntry is one value of the record's "slides" object.
type SlideEntry struct {
	Label  string `json:"-"`
	Topic  string `json:"tema"`
	Script string `json:"roteiro"`
}

// SlideLabel formats the key used for a slide in run files.
func SlideLabel(key string) string {
	return "Slide " + key
}

// SlideEntries keeps the "slides" object in insertion order.
type SlideEntries []SlideEntry

func (se SlideEntries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range se {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalRaw(e.Label)
		if err != nil {
			return nil, err
		}
		val, err := marshalRaw(struct {
			Topic  string `json:"tema"`
			Script string `json:"roteiro"`
		}{e.Topic, e.Script})
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (se *SlideEntries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: slides must be an object", ErrParse)
	}

	out := SlideEntries{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, _ := tok.(string)

		var v struct {
			Topic  string  `json:"tema"`
			Script *string `json:"roteiro"`
		}
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("%w: slide %q: %v", ErrParse, label, err)
		}
		if v.Script == nil {
			return fmt.Errorf("%w: slide %q has no roteiro", ErrParse, label)
		}
		out = append(out, SlideEntry{Label: label, Topic: v.Topic, Script: *v.Script})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*se = out
	return nil
}

// marshalRaw encodes v without HTML escaping and without the trailing newline.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
