package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nguyentantai21042004/slide-narrator/internal/checkpoint"
	"github.com/nguyentantai21042004/slide-narrator/internal/config"
	"github.com/nguyentantai21042004/slide-narrator/internal/exporter"
	"github.com/nguyentantai21042004/slide-narrator/internal/logger"
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
	"github.com/nguyentantai21042004/slide-narrator/internal/pipeline"
	"github.com/nguyentantai21042004/slide-narrator/internal/session"
)

const importedRun = `{
    "criado_em": "2024-03-05T10:11:12.000000",
    "nome_arquivo_origem": "aula.pdf",
    "total_paginas_pdf": 3,
    "pagina_inicio": 1,
    "pagina_fim": 2,
    "tempo_total_estimado_minutos": 10,
    "slides": {
        "Slide 1": {"tema": "Introdução", "roteiro": "Bom dia."},
        "Slide 2": {"tema": "Fim", "roteiro": "Até logo."}
    }
}`

type fakePipeline struct {
	req      pipeline.Request
	upload   []byte
	err      error
	resumeID string
}

func (f *fakePipeline) Generate(ctx context.Context, req pipeline.Request) (pipeline.Result, error) {
	f.req = req
	if f.err != nil {
		return pipeline.Result{}, f.err
	}
	if req.Reader == nil {
		return pipeline.Result{}, errors.New("no upload reader")
	}
	f.upload = make([]byte, req.Size)
	if _, err := req.Reader.ReadAt(f.upload, 0); err != nil && err != io.EOF {
		return pipeline.Result{}, err
	}
	return pipeline.Result{
		RunID:      "run-1",
		RecordPath: "/runs/roteiro_20240305_101112.json",
		Scripts:    models.Scripts{{Slide: req.Start, Text: "Olá."}},
	}, nil
}

func (f *fakePipeline) Resume(ctx context.Context, runID string) (pipeline.Result, error) {
	f.resumeID = runID
	if f.err != nil {
		return pipeline.Result{}, f.err
	}
	return pipeline.Result{
		RunID:      runID,
		RecordPath: "/runs/roteiro_20240306_080000.json",
		Scripts:    models.Scripts{{Slide: 1, Text: "Retomado."}, {Slide: 2, Text: "Fim."}},
	}, nil
}

func (f *fakePipeline) Process(ctx context.Context, path string) error {
	return errors.New("not used")
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	app         *fiber.App
	pipeline    *fakePipeline
	handler     *Handler
	runsDir     string
	checkpoints checkpoint.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dir := t.TempDir()
	runsDir := filepath.Join(dir, "runs")

	exp, err := exporter.New(config.ExportConfig{Title: "Roteiro"})
	if err != nil {
		t.Fatalf("exporter.New() error = %v", err)
	}

	cps, err := checkpoint.New(filepath.Join(dir, "checkpoints.bolt"))
	if err != nil {
		t.Fatalf("checkpoint.New() error = %v", err)
	}
	t.Cleanup(func() { _ = cps.Close() })

	fp := &fakePipeline{}
	h := &Handler{
		Pipeline:    fp,
		Store:       session.New(runsDir),
		Session:     session.NewRunSession(),
		Exporter:    exp,
		Logger:      logger.New("error", "text"),
		Checkpoints: cps,
	}
	return &testServer{
		app:         New(config.ServerConfig{MaxUploadMB: 5}, h),
		pipeline:    fp,
		handler:     h,
		runsDir:     runsDir,
		checkpoints: cps,
	}
}

func (s *testServer) do(t *testing.T, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(body, &env); err != nil {
			t.Fatalf("decode body %q: %v", body, err)
		}
	}
	return resp, env
}

func uploadRequest(t *testing.T, filename string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = part.Write([]byte("%PDF-1.4 fake"))
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	resp, _ := s.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Errorf("missing X-Request-ID")
	}
}

func TestCreateRun(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(t, uploadRequest(t, "aula.pdf", map[string]string{"start": "2", "end": "4", "minutes": "30"}))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, message %q", resp.StatusCode, env.Message)
	}

	got := s.pipeline.req
	if got.Path != "" || got.SourceName != "aula.pdf" || got.Start != 2 || got.End != 4 || got.Minutes != 30 {
		t.Errorf("pipeline request = %+v", got)
	}
	if string(s.pipeline.upload) != "%PDF-1.4 fake" {
		t.Errorf("upload read through reader = %q", s.pipeline.upload)
	}

	var view sessionView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatal(err)
	}
	if view.RunID != "run-1" || view.File != "roteiro_20240305_101112.json" {
		t.Errorf("view = %+v", view)
	}
	if len(view.Scripts) != 1 || view.Scripts[0].Heading != "Slide 2" {
		t.Errorf("scripts = %+v", view.Scripts)
	}
	if !s.handler.Session.Active() {
		t.Errorf("session not replaced")
	}
}

func TestCreateRunRejected(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		fields   map[string]string
		pipeErr  error
		want     int
	}{
		{"missing minutes", "aula.pdf", map[string]string{"start": "1", "end": "2"}, nil, http.StatusBadRequest},
		{"end before start", "aula.pdf", map[string]string{"start": "3", "end": "2", "minutes": "5"}, nil, http.StatusBadRequest},
		{"not a pdf", "aula.pptx", map[string]string{"start": "1", "end": "2", "minutes": "5"}, nil, http.StatusBadRequest},
		{"model failure", "aula.pdf", map[string]string{"start": "1", "end": "2", "minutes": "5"}, models.ErrModelCall, http.StatusBadGateway},
		{"unreadable pdf", "aula.pdf", map[string]string{"start": "1", "end": "2", "minutes": "5"}, models.ErrDocumentRead, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.pipeline.err = tt.pipeErr

			resp, env := s.do(t, uploadRequest(t, tt.filename, tt.fields))
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d (%q)", resp.StatusCode, tt.want, env.Message)
			}
			if env.Status != "error" {
				t.Errorf("status field = %q", env.Status)
			}
			if s.handler.Session.Active() {
				t.Errorf("session changed by a failed run")
			}
		})
	}
}

func writeRunFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(importedRun), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestListRuns(t *testing.T) {
	s := newTestServer(t)
	writeRunFiles(t, s.runsDir,
		"roteiro_20240105_101010.json",
		"roteiro_20240215_090000.json",
		"roteiro_20230105_080000.json",
	)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"roteiro_20240215_090000.json", "roteiro_20240105_101010.json", "roteiro_20230105_080000.json"}},
		{"?year=2024&month=1", []string{"roteiro_20240105_101010.json"}},
		{"?year=2024&day=15", []string{"roteiro_20240215_090000.json"}},
		{"?year=2022", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, env := s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/runs"+tt.query, nil))
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			var data struct {
				Runs []string `json:"runs"`
			}
			if err := json.Unmarshal(env.Data, &data); err != nil {
				t.Fatal(err)
			}
			if strings.Join(data.Runs, ",") != strings.Join(tt.want, ",") {
				t.Errorf("runs = %v, want %v", data.Runs, tt.want)
			}
		})
	}

	resp, _ := s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/runs?month=13", nil))
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("month=13 status = %d", resp.StatusCode)
	}

	_, env := s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/runs/years", nil))
	var years struct {
		Years []int `json:"years"`
	}
	if err := json.Unmarshal(env.Data, &years); err != nil {
		t.Fatal(err)
	}
	if len(years.Years) != 2 || years.Years[0] != 2024 || years.Years[1] != 2023 {
		t.Errorf("years = %v", years.Years)
	}
}

func TestLoadRun(t *testing.T) {
	s := newTestServer(t)
	writeRunFiles(t, s.runsDir, "roteiro_20240305_101112.json")
	if err := os.WriteFile(filepath.Join(s.runsDir, "roteiro_20240306_000000.json"), []byte(`{"slides": `), 0644); err != nil {
		t.Fatal(err)
	}

	resp, _ := s.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/runs/roteiro_20240306_000000.json/load", nil))
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("malformed status = %d", resp.StatusCode)
	}
	resp, _ = s.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/runs/roteiro_20990101_000000.json/load", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing status = %d", resp.StatusCode)
	}
	if s.handler.Session.Active() {
		t.Fatalf("failed loads changed the session")
	}

	resp, env := s.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/runs/roteiro_20240305_101112.json/load", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d (%q)", resp.StatusCode, env.Message)
	}
	scripts := s.handler.Session.Scripts()
	if len(scripts) != 2 || scripts[1].Slide != 2 || scripts[1].Text != "Até logo." {
		t.Errorf("session scripts = %+v", scripts)
	}
}

func TestSessionImportExportClear(t *testing.T) {
	s := newTestServer(t)

	resp, _ := s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/session/export.pdf", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("export without session status = %d", resp.StatusCode)
	}

	bad := httptest.NewRequest(http.MethodPost, "/api/v1/session/import", strings.NewReader(`{"criado_em": "x"}`))
	bad.Header.Set("Content-Type", "application/json")
	resp, _ = s.do(t, bad)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("import without slides status = %d", resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/import", strings.NewReader(importedRun))
	req.Header.Set("Content-Type", "application/json")
	resp, env := s.do(t, req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("import status = %d (%q)", resp.StatusCode, env.Message)
	}

	resp, env = s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))
	var view sessionView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK || len(view.Scripts) != 2 || view.Record == nil || view.Record.SourceName != "aula.pdf" {
		t.Errorf("session view = %+v", view)
	}

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/session/export.pdf", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "application/pdf" || !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Errorf("pdf export status = %d, type %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}

	resp, err = s.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/session/export.docx", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	body, _ = io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !bytes.HasPrefix(body, []byte("PK")) {
		t.Errorf("docx export status = %d", resp.StatusCode)
	}

	resp, _ = s.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/session", nil))
	if resp.StatusCode != http.StatusOK || s.handler.Session.Active() {
		t.Errorf("clear status = %d, active %v", resp.StatusCode, s.handler.Session.Active())
	}
}

func TestPendingAndResume(t *testing.T) {
	s := newTestServer(t)

	id, err := s.checkpoints.Begin(checkpoint.Run{
		Meta:  models.RunMeta{SourceName: "aula.pdf", StartPage: 1, EndPage: 2, TotalMinutes: 10},
		Pages: []string{"Intro", "Fim"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.checkpoints.Append(id, 1, "Retomado."); err != nil {
		t.Fatal(err)
	}

	resp, env := s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/runs/pending", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pending status = %d", resp.StatusCode)
	}
	var data struct {
		Runs []pendingRun `json:"runs"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if len(data.Runs) != 1 || data.Runs[0].ID != id || data.Runs[0].Written != 1 || data.Runs[0].Total != 2 {
		t.Errorf("pending = %+v", data.Runs)
	}

	resp, env = s.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/runs/resume/"+id, nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("resume status = %d (%q)", resp.StatusCode, env.Message)
	}
	if s.pipeline.resumeID != id {
		t.Errorf("resumed %q, want %q", s.pipeline.resumeID, id)
	}
	if scripts := s.handler.Session.Scripts(); len(scripts) != 2 {
		t.Errorf("session scripts = %+v", scripts)
	}

	s.pipeline.err = fmt.Errorf("load checkpoint: %w", checkpoint.ErrNotFound)
	resp, _ = s.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/runs/resume/missing", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown run status = %d", resp.StatusCode)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{models.ErrInvalidInput, 400},
		{models.ErrParse, 422},
		{models.ErrDocumentRead, 422},
		{models.ErrModelCall, 502},
		{models.ErrRender, 500},
		{os.ErrNotExist, 404},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
